package simapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/gridwalk/engine"
	"github.com/beka-birhanu/gridwalk/maze"
	"github.com/beka-birhanu/gridwalk/service/i"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Controller handles HTTP requests that drive and observe the simulation.
type Controller struct {
	sim      i.Simulator
	defaults Defaults
	logger   *log.Logger
}

// NewController creates a new simulation controller. The defaults are handed
// to the host page so a fresh browser session can start a run immediately.
func NewController(sim i.Simulator, defaults Defaults, logger *log.Logger) *Controller {
	return &Controller{
		sim:      sim,
		defaults: defaults,
		logger:   logger,
	}
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	sim := route.Group("/sim")
	{
		sim.POST("", c.initRun)
		sim.GET("/defaults", c.runDefaults)
		sim.POST("/step", c.step)
		sim.GET("/state", c.state)
		sim.GET("/cells/:row/:col", c.cellState)
		sim.GET("/finished", c.finished)
		sim.DELETE("", c.reset)
		sim.GET("/ws", c.stream)
	}
}

// RegisterProtected registers privileged routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
}

// initRun starts a fresh run from a seed and grid dimensions.
func (c *Controller) initRun(ctx *gin.Context) {
	var request InitRequest

	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.sim.Init(request.Seed, request.Width, request.Height); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	snapshot, err := c.sim.Snapshot()
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, snapshot)
}

// runDefaults returns the run parameters the host page starts with.
func (c *Controller) runDefaults(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.defaults)
}

// step advances the run by one unit of work.
func (c *Controller) step(ctx *gin.Context) {
	result, err := c.sim.Step()
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error(), "status": result.Status})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// state returns the full snapshot of the current run.
func (c *Controller) state(ctx *gin.Context) {
	snapshot, err := c.sim.Snapshot()
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}

// cellState returns a read-only view of one cell.
func (c *Controller) cellState(ctx *gin.Context) {
	row, err := strconv.Atoi(ctx.Param("row"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "row must be an integer"})
		return
	}
	col, err := strconv.Atoi(ctx.Param("col"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "col must be an integer"})
		return
	}

	view, err := c.sim.CellState(row, col)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// finished reports whether the run reached its terminal state.
func (c *Controller) finished(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, FinishedResponse{Finished: c.sim.Finished()})
}

// reset discards the run entirely.
func (c *Controller) reset(ctx *gin.Context) {
	c.sim.Reset()
	ctx.Status(http.StatusNoContent)
}

// statusFor maps boundary errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrOutOfBounds):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrNotInitialized):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
