package i

import "github.com/gin-gonic/gin"

// Controller is implemented by every API surface the router mounts. Public
// routes are reachable without authorization; protected registration is a
// slot for future non-local deployments.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
