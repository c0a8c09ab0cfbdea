package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wxdeck/log"
	"wxdeck/ui/layout"
)

// WidgetOverride tweaks one catalog entry. Nil fields leave the built-in
// value alone.
type WidgetOverride struct {
	Priority          *int  `yaml:"priority"`
	CanHide           *bool `yaml:"can_hide"`
	MinHeight         *int  `yaml:"min_height"`
	MinHeightExpanded *int  `yaml:"min_height_expanded"`
}

// LayoutOverrides is the parsed overrides file. Footprints are intentionally
// not overridable; the packing invariants depend on the built-in sizes.
type LayoutOverrides struct {
	Widgets map[string]WidgetOverride `yaml:"widgets"`
}

// LoadLayoutOverrides reads and parses the overrides YAML at path.
func LoadLayoutOverrides(path string) (*LayoutOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout overrides: %w", err)
	}

	var o LayoutOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse layout overrides: %w", err)
	}
	return &o, nil
}

// Apply returns a catalog and min-height tables with the overrides folded
// in. IDs not present in the catalog are logged and skipped. The adjusted
// catalog is re-validated before use.
func (o *LayoutOverrides) Apply(catalog []layout.WidgetConstraint, base, expanded map[string]int) ([]layout.WidgetConstraint, map[string]int, map[string]int, error) {
	known := make(map[string]bool, len(catalog))

	out := make([]layout.WidgetConstraint, len(catalog))
	copy(out, catalog)
	outBase := make(map[string]int, len(base))
	for k, v := range base {
		outBase[k] = v
	}
	outExpanded := make(map[string]int, len(expanded))
	for k, v := range expanded {
		outExpanded[k] = v
	}

	for i := range out {
		known[out[i].ID] = true
		ov, ok := o.Widgets[out[i].ID]
		if !ok {
			continue
		}
		if ov.Priority != nil {
			out[i].Priority = *ov.Priority
		}
		if ov.CanHide != nil {
			out[i].CanHide = *ov.CanHide
		}
		if ov.MinHeight != nil {
			outBase[out[i].ID] = *ov.MinHeight
		}
		if ov.MinHeightExpanded != nil {
			outExpanded[out[i].ID] = *ov.MinHeightExpanded
		}
	}

	for id := range o.Widgets {
		if !known[id] {
			log.WarningLog.Printf("layout overrides: unknown widget %q ignored", id)
		}
	}

	if err := layout.ValidateCatalog(out); err != nil {
		return nil, nil, nil, fmt.Errorf("layout overrides produce invalid catalog: %w", err)
	}
	return out, outBase, outExpanded, nil
}
