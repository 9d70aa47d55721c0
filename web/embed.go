// Package web embeds the browser host adapter: a canvas page that drives
// the simulation one step per animation frame over the websocket and paints
// the grid from snapshots.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// FS returns the host page as an http.FileSystem rooted at the static
// directory, ready to mount on the router.
func FS() (http.FileSystem, error) {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
