// Package navcue loads the sidebar configuration from its CUE package and
// builds the typed menu tree. CUE unification enforces the per-field schema
// (menu/schema.cue); nav.Validate runs the cross-item checks afterwards.
package navcue

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/connectra/navigator/internal/nav"
)

// Raw config shapes mirroring the CUE schema field names.

type menuConfig struct {
	Groups []groupConfig `json:"groups"`
}

type groupConfig struct {
	Label string       `json:"label"`
	Icon  string       `json:"icon"`
	Items []itemConfig `json:"items"`
}

type itemConfig struct {
	Label              string       `json:"label"`
	App                string       `json:"app"`
	Route              string       `json:"route"`
	PageType           string       `json:"page_type"`
	AccessVia          string       `json:"access_via"`
	Icon               string       `json:"icon"`
	Badge              string       `json:"badge"`
	RedirectTarget     string       `json:"redirect_target"`
	RequiresPermission string       `json:"requires_permission"`
	FeatureFlag        string       `json:"feature_flag"`
	RequiresRole       string       `json:"requires_role"`
	Match              *matchConfig `json:"match"`
	Children           []itemConfig `json:"children"`
}

type matchConfig struct {
	Kind   string `json:"kind"`
	Prefix string `json:"prefix"`
}

// Load reads the CUE package in dir and returns the menu tree and the
// feature flag snapshot. The returned tree has passed nav.Validate, so a
// nil error means the configuration is servable.
func Load(dir string) (nav.Menu, map[string]bool, error) {
	cctx := cuecontext.New()

	insts := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(insts) == 0 {
		return nav.Menu{}, nil, fmt.Errorf("no CUE instances found in %s", dir)
	}
	if insts[0].Err != nil {
		return nav.Menu{}, nil, fmt.Errorf("loading CUE package: %w", insts[0].Err)
	}

	val := cctx.BuildInstance(insts[0])
	if val.Err() != nil {
		return nav.Menu{}, nil, fmt.Errorf("building CUE value: %w", val.Err())
	}
	if err := val.Validate(); err != nil {
		return nav.Menu{}, nil, fmt.Errorf("validating CUE value: %w", err)
	}

	var cfg menuConfig
	menuVal := val.LookupPath(cue.ParsePath("menu"))
	if menuVal.Err() != nil {
		return nav.Menu{}, nil, fmt.Errorf("configuration has no menu field: %w", menuVal.Err())
	}
	if err := menuVal.Decode(&cfg); err != nil {
		return nav.Menu{}, nil, fmt.Errorf("decoding menu: %w", err)
	}

	flags := make(map[string]bool)
	featVal := val.LookupPath(cue.ParsePath("features"))
	if featVal.Exists() && featVal.Err() == nil {
		if err := featVal.Decode(&flags); err != nil {
			return nav.Menu{}, nil, fmt.Errorf("decoding features: %w", err)
		}
	}

	m, err := buildMenu(cfg)
	if err != nil {
		return nav.Menu{}, nil, err
	}
	if err := nav.Validate(m); err != nil {
		return nav.Menu{}, nil, err
	}
	return m, flags, nil
}

func buildMenu(cfg menuConfig) (nav.Menu, error) {
	m := nav.Menu{Groups: make([]nav.Group, 0, len(cfg.Groups))}
	for _, g := range cfg.Groups {
		group := nav.Group{Label: g.Label, Icon: g.Icon}
		for _, ic := range g.Items {
			item, err := buildItem(ic)
			if err != nil {
				return nav.Menu{}, err
			}
			for _, cc := range ic.Children {
				child, err := buildItem(cc)
				if err != nil {
					return nav.Menu{}, err
				}
				item.Children = append(item.Children, child)
			}
			group.Items = append(group.Items, item)
		}
		m.Groups = append(m.Groups, group)
	}
	return m, nil
}

func buildItem(ic itemConfig) (nav.Item, error) {
	it := nav.Item{
		Label:              ic.Label,
		App:                ic.App,
		Route:              ic.Route,
		PageType:           nav.PageType(ic.PageType),
		AccessVia:          nav.AccessVia(ic.AccessVia),
		Icon:               ic.Icon,
		Badge:              ic.Badge,
		RedirectTarget:     ic.RedirectTarget,
		RequiresPermission: ic.RequiresPermission,
		FeatureFlag:        ic.FeatureFlag,
		RequiresRole:       ic.RequiresRole,
	}
	if ic.Match != nil {
		switch ic.Match.Kind {
		case "default":
			// Explicit default is the same as no override.
		case "path_prefix":
			it.Match = &nav.MatchRule{Kind: nav.MatchPathPrefix, Prefix: ic.Match.Prefix}
		default:
			return nav.Item{}, fmt.Errorf("item %q: unknown match kind %q", ic.Label, ic.Match.Kind)
		}
	}
	return it, nil
}
