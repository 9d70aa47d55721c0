package api

import (
	"net/http"

	"github.com/beka-birhanu/gridwalk/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its dependencies, including the API
// controllers and the embedded host page.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	static      http.FileSystem
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Static      http.FileSystem // Optional host page served at /app
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		static:      config.Static,
	}
}

// Run starts the HTTP server and sets up routes.
//
// API routes are grouped and managed under the base URL. When a static
// filesystem is configured, the host page is served under /app and the root
// redirects to it.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	router := gin.Default()

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)

	{
		routes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(routes)
			}
		}

		// Slot for routes that will sit behind authorization once the
		// simulator grows a non-local deployment. Currently unused by the
		// shipped controllers.
		for _, c := range r.controllers {
			c.RegisterProtected(routes)
		}
	}

	if r.static != nil {
		router.StaticFS("/app", r.static)
		router.GET("/", func(ctx *gin.Context) {
			ctx.Redirect(http.StatusMovedPermanently, "/app")
		})
	}

	return router.Run(r.addr)
}
