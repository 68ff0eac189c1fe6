package nav

import (
	"strings"
	"testing"
)

func TestValidate_OK(t *testing.T) {
	if err := Validate(docsMenu()); err != nil {
		t.Fatalf("Validate(docsMenu) = %v, want nil", err)
	}
}

func TestValidate_DuplicateRoutePair(t *testing.T) {
	m := docsMenu()
	m.Groups[1].Items = append(m.Groups[1].Items, Item{
		Label: "Pages Again", App: "documentation", Route: "pages_list",
	})
	err := Validate(m)
	if err == nil {
		t.Fatal("expected error for duplicate (app, route) pair")
	}
	if !strings.Contains(err.Error(), "duplicate (app, route)") {
		t.Errorf("error = %q, want mention of duplicate pair", err)
	}
}

func TestValidate_ViaListWithoutRedirect(t *testing.T) {
	m := Menu{Groups: []Group{{
		Label: "Documentation",
		Items: []Item{{
			Label: "New Page", App: "documentation", Route: "pages_create",
			AccessVia: AccessViaList,
		}},
	}}}
	if err := Validate(m); err == nil {
		t.Fatal("expected error for via_list item without redirect target")
	}

	// A custom URL generator stands in for the redirect target.
	m.Groups[0].Items[0].URLGen = &URLRule{Kind: URLFunc, Func: func(Item, Context) (string, error) { return "/x", nil }}
	if err := Validate(m); err != nil {
		t.Fatalf("Validate with URL generator = %v, want nil", err)
	}
}

func TestValidate_NestingDepth(t *testing.T) {
	m := Menu{Groups: []Group{{
		Label: "Documentation",
		Items: []Item{{
			Label: "Pages", App: "documentation", Route: "pages_list",
			Children: []Item{{
				Label: "New", App: "documentation", Route: "pages_create",
				Children: []Item{{Label: "Deep", App: "documentation", Route: "deep"}},
			}},
		}},
	}}}
	err := Validate(m)
	if err == nil {
		t.Fatal("expected error for two levels of nesting")
	}
	if !strings.Contains(err.Error(), "children of their own") {
		t.Errorf("error = %q, want nesting defect", err)
	}
}

func TestValidate_EmptyChildrenAllowed(t *testing.T) {
	m := Menu{Groups: []Group{{
		Label: "Documentation",
		Items: []Item{{
			Label: "Pages", App: "documentation", Route: "pages_list",
			Children: []Item{},
		}},
	}}}
	if err := Validate(m); err != nil {
		t.Fatalf("empty children slice should validate, got %v", err)
	}
}

func TestValidate_CollectsAllDefects(t *testing.T) {
	m := Menu{Groups: []Group{{
		Label: "Broken",
		Items: []Item{
			{Label: "", App: "a", Route: "r1"},
			{Label: "NoRoute", App: "a"},
		},
	}}}
	err := Validate(m)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "empty label") || !strings.Contains(msg, "empty route identifier") {
		t.Errorf("error = %q, want both defects reported", msg)
	}
}
