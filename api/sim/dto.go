// Package simapi exposes the walk simulation over HTTP and a websocket,
// mapping boundary errors onto status codes a browser host can act on.
package simapi

// InitRequest represents a request to start a fresh simulation run.
// Seed has no binding tag because zero is a valid seed.
type InitRequest struct {
	Seed   uint64 `json:"seed"`
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
}

// Defaults are the run parameters the host page is seeded with on load.
type Defaults struct {
	Seed   uint64 `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// FinishedResponse reports whether the run reached its terminal state.
type FinishedResponse struct {
	Finished bool `json:"finished"`
}

// wsCommand is one request frame from the websocket host. Op is "step" or
// "state".
type wsCommand struct {
	Op string `json:"op"`
}

// wsError is the error frame sent back to a websocket host.
type wsError struct {
	Error string `json:"error"`
}
