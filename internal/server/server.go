// Package server assembles all HTTP handlers and starts the server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/connectra/navigator/internal/access"
	"github.com/connectra/navigator/internal/handler"
	"github.com/connectra/navigator/internal/inspect"
	"github.com/connectra/navigator/internal/nav"
	"github.com/connectra/navigator/internal/routes"
)

// Config holds server configuration. Menu must have passed nav.Validate
// before Run is called.
type Config struct {
	Port   int
	Menu   nav.Menu
	Routes *routes.Registry
	Flags  access.Flags
}

// Run starts the HTTP server with all routes registered and shuts it down
// when ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	resolver := &nav.Resolver{
		Routes: cfg.Routes,
		Perms:  access.Checker{},
		Flags:  cfg.Flags,
	}

	r := chi.NewRouter()
	r.Use(handler.Recovery, handler.Logging)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	nh := handler.NewNavigationHandler(cfg.Menu, resolver)
	r.Get("/v1/navigation", nh.GetNavigation)
	r.Get("/v1/menu", nh.GetMenu)

	r.Handle("/v1/inspect", inspect.NewHandler(cfg.Menu, resolver))

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("starting server on %s (%d page routes registered)", addr, cfg.Routes.Len())

	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	// ListenAndServe reports ErrServerClosed after a graceful Shutdown;
	// that is the normal exit path, not a failure.
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
