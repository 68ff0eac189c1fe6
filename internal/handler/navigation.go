// Package handler provides the HTTP handlers for the navigation service.
package handler

import (
	"net/http"

	"github.com/connectra/navigator/internal/access"
	"github.com/connectra/navigator/internal/nav"
)

// NavigationHandler serves the resolved sidebar tree for the requesting
// user and page context.
type NavigationHandler struct {
	menu     nav.Menu
	resolver *nav.Resolver
}

// NewNavigationHandler creates a handler over the loaded menu tree.
func NewNavigationHandler(menu nav.Menu, resolver *nav.Resolver) *NavigationHandler {
	return &NavigationHandler{menu: menu, resolver: resolver}
}

// GetNavigation handles GET /v1/navigation. The frontend supplies the
// current page identity as query parameters (app, route, path) and the
// acting user via identity headers; the response is the annotated tree.
func (h *NavigationHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	app := q.Get("app")
	route := q.Get("route")
	if app == "" || route == "" {
		writeError(w, http.StatusBadRequest, "MISSING_CONTEXT", "app and route query parameters are required")
		return
	}

	ctx := nav.Context{
		App:   app,
		Route: route,
		Path:  q.Get("path"),
		User:  access.UserFromHeaders(r),
	}
	writeJSON(w, http.StatusOK, h.resolver.Resolve(h.menu, ctx))
}

// GetMenu handles GET /v1/menu: the raw configured tree, before
// per-request annotation. Intended for admin and debugging use.
func (h *NavigationHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.menu)
}
