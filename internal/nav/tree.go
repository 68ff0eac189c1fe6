// Package nav implements the sidebar navigation tree and its per-request
// resolution: active-state matching, visibility filtering, and return-URL
// generation.
//
// The menu tree is loaded once at process start and treated as an immutable
// value; Resolve never mutates it and always returns a freshly built
// annotated copy, so the shared tree is safe for concurrent reads.
package nav

// PageType classifies how a page is reached and rendered.
type PageType string

const (
	// PageDynamic is a top-level page with its own list/detail rendering.
	PageDynamic PageType = "dynamic"
	// PageStatic is a fixed page, typically a nested action of a list page.
	PageStatic PageType = "static"
)

// AccessVia describes how a page is entered from navigation.
type AccessVia string

const (
	// AccessDirect pages are linked directly from the sidebar.
	AccessDirect AccessVia = "direct"
	// AccessViaList pages are reachable only as a nested action of their
	// parent list page and carry a return URL back to the origin.
	AccessViaList AccessVia = "via_list"
)

// MatchKind selects the active-state matching strategy for an item.
// The set is closed so the resolver stays statically checkable.
type MatchKind string

const (
	// MatchDefault activates an item when its (app, route) pair equals the
	// request context's pair.
	MatchDefault MatchKind = ""
	// MatchPathPrefix activates an item when the raw request path starts
	// with the configured prefix.
	MatchPathPrefix MatchKind = "path_prefix"
	// MatchFunc delegates to an explicit callback. Only settable from code,
	// not from configuration.
	MatchFunc MatchKind = "func"
)

// MatchRule overrides the default active-state rule for one item.
// When present, its result is authoritative.
type MatchRule struct {
	Kind   MatchKind          `json:"kind"`
	Prefix string             `json:"prefix,omitempty"` // for MatchPathPrefix
	Func   func(Context) bool `json:"-"`                // for MatchFunc
}

// URLKind selects the link-generation strategy for a via_list item.
type URLKind string

const (
	// URLDefault appends a return_url query parameter to the resolved
	// redirect target.
	URLDefault URLKind = ""
	// URLFunc delegates to an explicit callback.
	URLFunc URLKind = "func"
)

// URLRule overrides default return-URL generation for one item.
type URLRule struct {
	Kind URLKind                             `json:"kind"`
	Func func(Item, Context) (string, error) `json:"-"` // for URLFunc
}

// Item is one entry in the sidebar. (App, Route) identifies the page it
// links to and must be unique across the whole tree.
type Item struct {
	Label string `json:"label"`
	App   string `json:"app"`
	Route string `json:"route"`

	PageType  PageType  `json:"page_type"`
	AccessVia AccessVia `json:"access_via"`

	Icon  string `json:"icon,omitempty"` // inline markup, passed through to the renderer
	Badge string `json:"badge,omitempty"`

	// RedirectTarget names the route whose URL anchors the return link for
	// via_list items. Required for via_list unless URLGen is set.
	RedirectTarget string `json:"redirect_target,omitempty"`

	// Visibility predicates, evaluated in this order: permission, then
	// feature flag, then role. The first one set decides.
	RequiresPermission string `json:"requires_permission,omitempty"`
	FeatureFlag        string `json:"feature_flag,omitempty"`
	RequiresRole       string `json:"requires_role,omitempty"`

	Match  *MatchRule `json:"match,omitempty"`
	URLGen *URLRule   `json:"-"`

	// Children holds nested items. Only one level of nesting is supported;
	// an empty slice renders as "no nested items".
	Children []Item `json:"children,omitempty"`
}

// Group is an ordered section of the sidebar. Groups render top to bottom
// in configuration order.
type Group struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Items []Item `json:"items"`
}

// Menu is the full sidebar configuration.
type Menu struct {
	Groups []Group `json:"groups"`
}

// User is the acting user as seen by the navigation layer: an opaque name,
// a role, and the set of granted permission strings.
type User struct {
	Name        string
	Role        string
	Permissions []string
}

// HasPermission reports whether the user was granted the named permission.
func (u User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Context is the per-request input to resolution: the route identity of the
// page being rendered, the raw request path, and the acting user.
type Context struct {
	App   string
	Route string
	Path  string
	User  User
}

// Matches reports whether the item is the active item for the given context.
// A custom match rule, when present, is authoritative; otherwise the item is
// active iff its (app, route) pair equals the context's pair. Activation
// never propagates between parents and children.
func (it Item) Matches(ctx Context) bool {
	if it.Match != nil {
		switch it.Match.Kind {
		case MatchPathPrefix:
			return it.Match.Prefix != "" && hasPathPrefix(ctx.Path, it.Match.Prefix)
		case MatchFunc:
			return it.Match.Func != nil && it.Match.Func(ctx)
		}
	}
	return it.App == ctx.App && it.Route == ctx.Route
}

func hasPathPrefix(path, prefix string) bool {
	return len(path) >= len(prefix) && path[:len(prefix)] == prefix
}
