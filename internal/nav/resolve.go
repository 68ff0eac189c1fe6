package nav

import (
	"log"
	"net/url"
)

// RouteResolver maps an (app, route) identifier pair to a URL path.
// Implementations return an error for identifiers with no live route.
type RouteResolver interface {
	URL(app, route string) (string, error)
}

// PermissionChecker reports whether a user holds a named permission.
// An error from the check is treated as a denial by the resolver.
type PermissionChecker interface {
	Allows(user User, permission string) (bool, error)
}

// FlagSource reports process-wide feature flag state.
type FlagSource interface {
	Enabled(flag string) bool
}

// ResolvedItem is the render-ready form of an Item. A missing URL marks the
// item inert: rendered without a link and never active.
type ResolvedItem struct {
	Label     string         `json:"label"`
	App       string         `json:"app"`
	Route     string         `json:"route"`
	URL       string         `json:"url,omitempty"`
	Icon      string         `json:"icon,omitempty"`
	Badge     string         `json:"badge,omitempty"`
	PageType  PageType       `json:"page_type"`
	AccessVia AccessVia      `json:"access_via"`
	Active    bool           `json:"active"`
	Children  []ResolvedItem `json:"children,omitempty"`
}

// ResolvedGroup is a rendered sidebar section.
type ResolvedGroup struct {
	Label string         `json:"label"`
	Icon  string         `json:"icon,omitempty"`
	Items []ResolvedItem `json:"items"`
}

// Resolved is the annotated menu tree handed to the rendering layer.
type Resolved struct {
	Groups []ResolvedGroup `json:"groups"`
}

// Resolver turns the static menu tree plus per-request context into a
// render-ready tree. All lookups go through the injected collaborators;
// resolution itself is pure and writes no shared state.
type Resolver struct {
	Routes RouteResolver
	Perms  PermissionChecker
	Flags  FlagSource
}

// Resolve produces the annotated tree for one request: invisible items are
// dropped, active flags computed, and link URLs generated. Traversal is
// depth-first, parent before children. Groups whose items are all filtered
// out are still emitted.
func (r *Resolver) Resolve(m Menu, ctx Context) Resolved {
	out := Resolved{Groups: make([]ResolvedGroup, 0, len(m.Groups))}
	for _, g := range m.Groups {
		rg := ResolvedGroup{Label: g.Label, Icon: g.Icon, Items: []ResolvedItem{}}
		for _, it := range g.Items {
			ri, ok := r.resolveItem(it, ctx)
			if !ok {
				continue
			}
			for _, child := range it.Children {
				rc, ok := r.resolveItem(child, ctx)
				if !ok {
					continue
				}
				ri.Children = append(ri.Children, rc)
			}
			rg.Items = append(rg.Items, ri)
		}
		out.Groups = append(out.Groups, rg)
	}
	return out
}

// resolveItem annotates a single item. The second return is false when the
// item is not visible to the acting user.
func (r *Resolver) resolveItem(it Item, ctx Context) (ResolvedItem, bool) {
	if !r.Visible(it, ctx.User) {
		return ResolvedItem{}, false
	}

	ri := ResolvedItem{
		Label:     it.Label,
		App:       it.App,
		Route:     it.Route,
		Icon:      it.Icon,
		Badge:     it.Badge,
		PageType:  it.PageType,
		AccessVia: it.AccessVia,
	}

	u, err := r.itemURL(it, ctx)
	if err != nil {
		// Fail soft: the item renders inert rather than erroring the page.
		log.Printf("nav: item %q (%s:%s) has no resolvable URL: %v", it.Label, it.App, it.Route, err)
		return ri, true
	}
	ri.URL = u
	ri.Active = it.Matches(ctx)
	return ri, true
}

func (r *Resolver) itemURL(it Item, ctx Context) (string, error) {
	if it.AccessVia == AccessViaList {
		return r.ComputeReturnURL(it, ctx)
	}
	return r.Routes.URL(it.App, it.Route)
}

// Visible evaluates the item's visibility predicates for the user, in
// precedence order: required permission, then feature flag, then required
// role. Items with no predicate are visible. Lookup failures deny.
func (r *Resolver) Visible(it Item, u User) bool {
	switch {
	case it.RequiresPermission != "":
		if r.Perms == nil {
			return false
		}
		ok, err := r.Perms.Allows(u, it.RequiresPermission)
		if err != nil {
			log.Printf("nav: permission check %q for user %q failed, hiding item %q: %v", it.RequiresPermission, u.Name, it.Label, err)
			return false
		}
		return ok
	case it.FeatureFlag != "":
		return r.Flags != nil && r.Flags.Enabled(it.FeatureFlag)
	case it.RequiresRole != "":
		return u.Role == it.RequiresRole
	}
	return true
}

// FilterVisible prunes the source tree down to the items the user may see,
// without annotating it. Groups left empty by filtering are kept.
func (r *Resolver) FilterVisible(m Menu, u User) Menu {
	out := Menu{Groups: make([]Group, 0, len(m.Groups))}
	for _, g := range m.Groups {
		fg := Group{Label: g.Label, Icon: g.Icon}
		for _, it := range g.Items {
			if !r.Visible(it, u) {
				continue
			}
			kept := it
			kept.Children = nil
			for _, child := range it.Children {
				if r.Visible(child, u) {
					kept.Children = append(kept.Children, child)
				}
			}
			fg.Items = append(fg.Items, kept)
		}
		out.Groups = append(out.Groups, fg)
	}
	return out
}

// ComputeReturnURL builds the link for a via_list item: the resolved
// redirect target URL with a percent-encoded return_url parameter carrying
// the origin path, so the destination page can redirect back after
// submission. A custom URL generator, when present, is authoritative.
func (r *Resolver) ComputeReturnURL(it Item, ctx Context) (string, error) {
	if it.URLGen != nil && it.URLGen.Kind == URLFunc && it.URLGen.Func != nil {
		return it.URLGen.Func(it, ctx)
	}
	base, err := r.Routes.URL(it.App, it.RedirectTarget)
	if err != nil {
		return "", err
	}
	q := url.Values{"return_url": {ctx.Path}}
	return base + "?" + q.Encode(), nil
}
