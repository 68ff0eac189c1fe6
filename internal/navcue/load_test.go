package navcue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/connectra/navigator/internal/nav"
)

func TestLoad_ValidConfig(t *testing.T) {
	m, flags, err := Load("testdata/menu")
	require.NoError(t, err)
	require.Len(t, m.Groups, 1)

	g := m.Groups[0]
	require.Equal(t, "Documentation", g.Label)
	require.Len(t, g.Items, 2)

	pages := g.Items[0]
	require.Equal(t, "pages_list", pages.Route)
	require.Equal(t, nav.PageDynamic, pages.PageType, "schema default should apply")
	require.NotNil(t, pages.Match)
	require.Equal(t, nav.MatchPathPrefix, pages.Match.Kind)
	require.Equal(t, "/docs/pages/", pages.Match.Prefix)

	require.Len(t, pages.Children, 1)
	child := pages.Children[0]
	require.Equal(t, nav.AccessViaList, child.AccessVia)
	require.Equal(t, "pages_list", child.RedirectTarget)

	require.Equal(t, "spaces", g.Items[1].FeatureFlag)
	require.True(t, flags["spaces"])
}

func TestLoad_SchemaRejectsBadEnum(t *testing.T) {
	_, _, err := Load("testdata/badenum")
	require.Error(t, err, "page_type outside the enum must not load")
}

func TestLoad_ValidationRejectsViaListWithoutRedirect(t *testing.T) {
	_, _, err := Load("testdata/missingredirect")
	require.Error(t, err)
	require.Contains(t, err.Error(), "redirect target")
}

func TestLoad_MissingDir(t *testing.T) {
	_, _, err := Load("testdata/nonexistent")
	require.Error(t, err)
}

func TestLoad_ShippedConfig(t *testing.T) {
	// The configuration the server actually ships with must load clean.
	m, flags, err := Load("../../menu")
	require.NoError(t, err)
	require.NotEmpty(t, m.Groups)
	require.True(t, flags["jobs_dashboard"])
}
