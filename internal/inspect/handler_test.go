package inspect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/connectra/navigator/internal/access"
	"github.com/connectra/navigator/internal/handler"
	"github.com/connectra/navigator/internal/nav"
	"github.com/connectra/navigator/internal/routes"
)

// serverEnvelope mirrors ServerMessage with a raw payload for decoding.
type serverEnvelope struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	reg := routes.NewRegistry()
	if err := reg.Register("documentation", "pages_list", "/docs/pages/"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	menu := nav.Menu{Groups: []nav.Group{{
		Label: "Documentation",
		Items: []nav.Item{{Label: "Pages", App: "documentation", Route: "pages_list"}},
	}}}
	resolver := &nav.Resolver{Routes: reg, Perms: access.Checker{}, Flags: access.Flags{}}
	return NewHandler(menu, resolver)
}

func dialHandler(t *testing.T, h http.Handler) (*websocket.Conn, context.Context) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dialing inspector: %v", err)
	}
	t.Cleanup(func() { conn.CloseNow() })
	return conn, ctx
}

func TestInspector_ResolveRoundTrip(t *testing.T) {
	conn, ctx := dialHandler(t, newTestHandler(t))

	data, _ := json.Marshal(ResolveData{
		App:   "documentation",
		Route: "pages_list",
		Path:  "/docs/pages/",
		User:  UserData{Name: "ana"},
	})
	if err := wsjson.Write(ctx, conn, ClientMessage{Type: "resolve", ID: "req-1", Data: data}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var env serverEnvelope
	if err := wsjson.Read(ctx, conn, &env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "tree" {
		t.Fatalf("type = %q, want tree", env.Type)
	}
	if env.RequestID != "req-1" {
		t.Errorf("request_id = %q, want req-1", env.RequestID)
	}
	var td TreeData
	if err := json.Unmarshal(env.Data, &td); err != nil {
		t.Fatalf("decoding tree: %v", err)
	}
	if len(td.Tree.Groups) != 1 || !td.Tree.Groups[0].Items[0].Active {
		t.Errorf("unexpected tree: %+v", td.Tree)
	}
}

func TestInspector_PingPong(t *testing.T) {
	conn, ctx := dialHandler(t, newTestHandler(t))

	if err := wsjson.Write(ctx, conn, ClientMessage{Type: "ping", ID: "p1"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var env serverEnvelope
	if err := wsjson.Read(ctx, conn, &env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "pong" || env.RequestID != "p1" {
		t.Errorf("got %q/%q, want pong/p1", env.Type, env.RequestID)
	}
}

func TestInspector_UnknownTypeAndMissingContext(t *testing.T) {
	conn, ctx := dialHandler(t, newTestHandler(t))

	if err := wsjson.Write(ctx, conn, ClientMessage{Type: "bogus", ID: "b1"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var env serverEnvelope
	if err := wsjson.Read(ctx, conn, &env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "error" {
		t.Fatalf("type = %q, want error", env.Type)
	}

	data, _ := json.Marshal(ResolveData{})
	if err := wsjson.Write(ctx, conn, ClientMessage{Type: "resolve", ID: "b2", Data: data}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := wsjson.Read(ctx, conn, &env); err != nil {
		t.Fatalf("read: %v", err)
	}
	var ed ErrorData
	if err := json.Unmarshal(env.Data, &ed); err != nil {
		t.Fatalf("decoding error data: %v", err)
	}
	if ed.Code != "missing_context" {
		t.Errorf("code = %q, want missing_context", ed.Code)
	}
}

func TestInspector_UpgradeThroughMiddleware(t *testing.T) {
	// The server mounts the inspector behind Recovery and Logging; the
	// upgrade must survive that exact chain, not just the bare handler.
	wrapped := handler.Recovery(handler.Logging(newTestHandler(t)))
	conn, ctx := dialHandler(t, wrapped)

	if err := wsjson.Write(ctx, conn, ClientMessage{Type: "ping", ID: "mw-1"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var env serverEnvelope
	if err := wsjson.Read(ctx, conn, &env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "pong" || env.RequestID != "mw-1" {
		t.Errorf("got %q/%q, want pong/mw-1", env.Type, env.RequestID)
	}
}
