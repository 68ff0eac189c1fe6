package nav

import (
	"fmt"
	"strings"
)

// Validate checks the static menu tree for configuration defects. It is
// meant to run once at process start so broken entries are caught before
// serving traffic, not per request.
//
// Checked invariants:
//   - (app, route) pairs are unique across the whole tree, including
//     children, so active-state matching is unambiguous
//   - via_list items carry a redirect target or a custom URL generator
//   - nesting is at most one level deep
//   - labels and route identifiers are non-empty
//
// All defects are reported in one pass so operators see the full list.
func Validate(m Menu) error {
	var defects []string
	seen := make(map[string]string) // "app:route" -> item label

	checkItem := func(it Item, where string, isChild bool) {
		if it.Label == "" {
			defects = append(defects, fmt.Sprintf("%s: empty label", where))
		}
		if it.Route == "" {
			defects = append(defects, fmt.Sprintf("%s: empty route identifier", where))
		} else {
			key := it.App + ":" + it.Route
			if prev, dup := seen[key]; dup {
				defects = append(defects, fmt.Sprintf("%s: duplicate (app, route) pair %q, first used by %q", where, key, prev))
			} else {
				seen[key] = it.Label
			}
		}
		if it.AccessVia == AccessViaList && it.RedirectTarget == "" && it.URLGen == nil {
			defects = append(defects, fmt.Sprintf("%s: via_list item has no redirect target and no URL generator", where))
		}
		if isChild && len(it.Children) > 0 {
			defects = append(defects, fmt.Sprintf("%s: nested items may not have children of their own", where))
		}
	}

	for gi, g := range m.Groups {
		if g.Label == "" {
			defects = append(defects, fmt.Sprintf("group %d: empty label", gi))
		}
		for _, it := range g.Items {
			where := fmt.Sprintf("group %q item %q", g.Label, it.Label)
			checkItem(it, where, false)
			for _, child := range it.Children {
				childWhere := fmt.Sprintf("%s child %q", where, child.Label)
				checkItem(child, childWhere, true)
			}
		}
	}

	if len(defects) > 0 {
		return fmt.Errorf("menu validation failed:\n  %s", strings.Join(defects, "\n  "))
	}
	return nil
}
