package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/property-portal/internal/api/metrics"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamTicket godoc
// @Summary Stream ticket comments and status changes
// @Description Upgrades to a websocket. Each message is a JSON ticket event.
// @Tags tickets
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param token query string false "Session token for clients that cannot set headers"
// @Success 101
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id}/stream [get]
func (h *TicketHandler) StreamTicket(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Access is checked before the upgrade so errors still go out as JSON.
	sub, err := h.svc.Subscribe(c.Request.Context(), middleware.SessionFrom(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer h.svc.Unsubscribe(sub)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Uint("ticket_id", id), zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	metrics.TicketStreamsActive.Inc()
	defer metrics.TicketStreamsActive.Dec()

	// Reader: only pongs and close frames are expected from the client.
	done := make(chan struct{})
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Dropped by the hub for falling behind.
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscriber too slow"))
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
