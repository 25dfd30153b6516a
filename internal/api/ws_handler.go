package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"rodacerta/frotagest/internal/logging"
	"rodacerta/frotagest/pkg/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// the SPA is served from another origin in development
		return true
	},
}

// FleetWSHandler handles GET /ws/fleet, upgrading the connection and
// attaching it to the broadcast hub.
func FleetWSHandler(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Warn("WebSocket upgrade failed", "error", err.Error())
			return
		}

		client := ws.NewClient(hub, conn)
		client.Register()

		go client.WritePump()
		go client.ReadPump()
	}
}
