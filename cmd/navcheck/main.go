// cmd/navcheck validates the sidebar navigation configuration before it
// reaches a running server.
//
// Phase 1 loads the CUE menu package, which applies the schema constraints
// and the cross-item validation pass (duplicate route pairs, via_list items
// without redirect targets, nesting depth).
//
// Phase 2 cross-checks every route identifier the menu references —
// including redirect targets — against the application's route table, so
// dead links are caught here instead of degrading to inert items at
// runtime.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/connectra/navigator/internal/nav"
	"github.com/connectra/navigator/internal/navcue"
	"github.com/connectra/navigator/internal/routes"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("navcheck: ")

	menuDir := os.Getenv("MENU_DIR")
	if menuDir == "" {
		menuDir = filepath.Join(findProjectRoot(), "menu")
	}

	fmt.Printf("Phase 1: Loading and validating menu configuration (%s)...\n", menuDir)
	menu, flags, err := navcue.Load(menuDir)
	if err != nil {
		log.Fatalf("menu configuration invalid: %v", err)
	}
	fmt.Printf("  Configuration validates (%d groups, %d feature flags).\n", len(menu.Groups), len(flags))

	fmt.Println("Phase 2: Cross-checking route identifiers against the route table...")
	registry, err := routes.DefaultRegistry()
	if err != nil {
		log.Fatalf("building route registry: %v", err)
	}

	dead := 0
	checkRoute := func(label, app, route string) {
		if _, err := registry.URL(app, route); err != nil {
			fmt.Printf("  DEAD LINK: item %q references %s:%s\n", label, app, route)
			dead++
		}
	}
	walkItems(menu, func(it nav.Item) {
		checkRoute(it.Label, it.App, it.Route)
		if it.RedirectTarget != "" {
			checkRoute(it.Label, it.App, it.RedirectTarget)
		}
	})
	if dead > 0 {
		log.Fatalf("%d dead link(s) found", dead)
	}
	fmt.Println("  All route identifiers resolve.")

	fmt.Println("\nnavcheck: OK — configuration is servable")
}

// walkItems visits every item in the tree, parents before children.
func walkItems(m nav.Menu, fn func(nav.Item)) {
	for _, g := range m.Groups {
		for _, it := range g.Items {
			fn(it)
			for _, child := range it.Children {
				fn(child)
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			log.Fatal("cannot find project root (no go.mod found)")
		}
		dir = parent
	}
}
