package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/connectra/navigator/internal/nav"
)

// Handler manages WebSocket connections for the navigation inspector.
type Handler struct {
	menu     nav.Menu
	resolver *nav.Resolver
}

// NewHandler creates an inspector over the loaded menu tree.
func NewHandler(menu nav.Menu, resolver *nav.Resolver) *Handler {
	return &Handler{menu: menu, resolver: resolver}
}

// ServeHTTP upgrades to WebSocket and runs the message loop.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("inspect: websocket accept: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	for {
		var msg ClientMessage
		err := wsjson.Read(ctx, conn, &msg)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				log.Printf("inspect: connection closed: %v", websocket.CloseStatus(err))
			}
			return
		}

		switch msg.Type {
		case "resolve":
			h.handleResolve(ctx, conn, msg)
		case "ping":
			h.send(ctx, conn, ServerMessage{Type: "pong", RequestID: msg.ID})
		default:
			h.sendError(ctx, conn, msg.ID, "unknown_type", fmt.Sprintf("unknown message type: %s", msg.Type))
		}
	}
}

func (h *Handler) handleResolve(ctx context.Context, conn *websocket.Conn, msg ClientMessage) {
	var data ResolveData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		h.sendError(ctx, conn, msg.ID, "invalid_data", "invalid resolve data")
		return
	}
	if data.App == "" || data.Route == "" {
		h.sendError(ctx, conn, msg.ID, "missing_context", "app and route are required")
		return
	}

	resolved := h.resolver.Resolve(h.menu, nav.Context{
		App:   data.App,
		Route: data.Route,
		Path:  data.Path,
		User: nav.User{
			Name:        data.User.Name,
			Role:        data.User.Role,
			Permissions: data.User.Permissions,
		},
	})

	h.send(ctx, conn, ServerMessage{
		Type:      "tree",
		RequestID: msg.ID,
		Data:      TreeData{Tree: resolved},
	})
}

func (h *Handler) send(ctx context.Context, conn *websocket.Conn, msg ServerMessage) {
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		log.Printf("inspect: write error: %v", err)
	}
}

func (h *Handler) sendError(ctx context.Context, conn *websocket.Conn, requestID, code, message string) {
	h.send(ctx, conn, ServerMessage{
		Type:      "error",
		RequestID: requestID,
		Data: ErrorData{
			Code:    code,
			Message: message,
		},
	})
}
