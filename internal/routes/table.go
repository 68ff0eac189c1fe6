package routes

import "fmt"

// tableEntry is one row of the static route table.
type tableEntry struct {
	App  string
	Name string
	Path string
}

// defaultTable lists the page routes the application serves. The sidebar
// configuration in menu/ references routes by (app, name); navcheck
// cross-checks the two at build time and the server at startup.
var defaultTable = []tableEntry{
	{"contacts", "contacts_list", "/contacts/"},
	{"contacts", "contacts_create", "/contacts/new/"},
	{"contacts", "contacts_import", "/contacts/import/"},

	{"companies", "companies_list", "/companies/"},
	{"companies", "companies_create", "/companies/new/"},

	{"documentation", "pages_list", "/docs/pages/"},
	{"documentation", "pages_create", "/docs/pages/new/"},
	{"documentation", "pages_detail", "/docs/pages/detail/"},
	{"documentation", "spaces_list", "/docs/spaces/"},
	{"documentation", "spaces_create", "/docs/spaces/new/"},

	{"jobs", "imports_list", "/jobs/imports/"},
	{"jobs", "exports_list", "/jobs/exports/"},

	{"settings", "settings_home", "/settings/"},
	{"settings", "api_keys", "/settings/api-keys/"},
	{"settings", "team_members", "/settings/team/"},
}

// DefaultRegistry builds the registry for the application's page routes.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, e := range defaultTable {
		if err := r.Register(e.App, e.Name, e.Path); err != nil {
			return nil, fmt.Errorf("building default route table: %w", err)
		}
	}
	return r, nil
}
