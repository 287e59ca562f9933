package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// How often a fresh stats snapshot is pushed to the dashboard.
	statsPeriod = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	dashboard *application.DashboardService
}

func NewWSHandler(dashboard *application.DashboardService) *WSHandler {
	return &WSHandler{dashboard: dashboard}
}

// StreamDashboard upgrades the connection and pushes dashboard stats
// snapshots until the client goes away. Snapshots that fail to compute
// are skipped, the stream keeps the last good cadence.
func (h *WSHandler) StreamDashboard(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	done := make(chan struct{})

	// Reader goroutine: its only job is heartbeat bookkeeping and
	// noticing the close.
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	statsTicker := time.NewTicker(statsPeriod)
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		statsTicker.Stop()
		pingTicker.Stop()
		_ = conn.Close()
	}()

	// First snapshot immediately so the dashboard is not blank for a tick.
	h.push(conn)

	for {
		select {
		case <-done:
			return
		case <-statsTicker.C:
			if !h.push(conn) {
				return
			}
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) push(conn *websocket.Conn) bool {
	stats, err := h.dashboard.Stats()
	if err != nil {
		log.Printf("dashboard stream: stats snapshot failed: %v", err)
		return true
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(stats) == nil
}
