package websocket

import (
	"html/template"
	"net/http"

	ws "github.com/coder/websocket"

	"github.com/dukerupert/familytree/internal/family"
)

// HandleWebSocket returns an HTTP handler that upgrades connections to
// WebSocket and runs each one with its own dialog session.
func HandleWebSocket(hub *Hub, tree *family.Tree, tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true, // read-only page, any origin may connect
		})
		if err != nil {
			hub.logger.Warn("websocket accept", "error", err)
			return
		}
		defer conn.CloseNow()

		client := NewClient(hub, conn, NewSession(tree, tmpl))
		client.Run(r.Context())
	}
}
