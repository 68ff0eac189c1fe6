// Package inspect defines the WebSocket protocol for the navigation
// inspector, a debugging surface for active-state matching and visibility
// filtering: the client sends page contexts and receives the tree the
// resolver would produce for them.
package inspect

import (
	"encoding/json"

	"github.com/connectra/navigator/internal/nav"
)

// ── Client → Server messages ────────────────────────────────────────────────

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string          `json:"type"` // "resolve", "ping"
	ID   string          `json:"id"`   // Client-assigned request ID
	Data json.RawMessage `json:"data,omitempty"`
}

// ResolveData is the payload for "resolve" messages: the page context and
// user identity to resolve the tree for.
type ResolveData struct {
	App   string   `json:"app"`
	Route string   `json:"route"`
	Path  string   `json:"path"`
	User  UserData `json:"user"`
}

// UserData identifies the acting user for a resolve request.
type UserData struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// ── Server → Client messages ────────────────────────────────────────────────

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type      string `json:"type"`                 // "tree", "error", "pong"
	RequestID string `json:"request_id,omitempty"` // Echoes client ID
	Data      any    `json:"data,omitempty"`
}

// TreeData carries the resolved tree for a resolve request.
type TreeData struct {
	Tree nav.Resolved `json:"tree"`
}

// ErrorData carries an error message.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
