package simapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// upgrader accepts any origin: the simulator serves its own host page and
// binds to a local development address.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// stream upgrades the connection and answers host commands one at a time.
// The host owns the cadence: it sends {"op":"step"} once per animation frame
// and the engine performs exactly one unit of work per frame received.
func (c *Controller) stream(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	connID := uuid.New()
	c.logger.Info("host connected", "conn", connID, "remote", conn.RemoteAddr())
	defer c.logger.Info("host disconnected", "conn", connID)

	for {
		var cmd wsCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("websocket read failed", "conn", connID, "err", err)
			}
			return
		}

		var reply any
		switch cmd.Op {
		case "step":
			result, err := c.sim.Step()
			if err != nil {
				reply = wsError{Error: err.Error()}
			} else {
				reply = result
			}
		case "state":
			snapshot, err := c.sim.Snapshot()
			if err != nil {
				reply = wsError{Error: err.Error()}
			} else {
				reply = snapshot
			}
		default:
			reply = wsError{Error: "unknown op: " + cmd.Op}
		}

		if err := conn.WriteJSON(reply); err != nil {
			c.logger.Error("websocket write failed", "conn", connID, "err", err)
			return
		}
	}
}
