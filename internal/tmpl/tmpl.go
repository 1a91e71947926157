// Package tmpl is the catalog of visual templates: each pairs an
// editable-field schema with its theme set and display metadata.
package tmpl

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/yuna/weekcard/internal/schema"
)

// Template describes one visual template family.
type Template struct {
	ID           string
	Name         string
	Schema       schema.Schema
	DefaultTheme string
	Themes       []string
}

// Catalog resolves template ids to definitions.
type Catalog struct {
	byID  map[string]Template
	order []string
}

// NewCatalog builds a catalog from the built-in templates plus any extras
// (custom YAML definitions). Extras with a known id override built-ins.
func NewCatalog(extras ...Template) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Template)}
	for _, t := range append(builtins(), extras...) {
		if err := schema.Validate(t.Schema); err != nil {
			return nil, fmt.Errorf("template %q: %w", t.ID, err)
		}
		if _, exists := c.byID[t.ID]; !exists {
			c.order = append(c.order, t.ID)
		}
		c.byID[t.ID] = t
	}
	return c, nil
}

// IDs returns the catalog's template ids in registration order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// Resolve looks a template up by id. On a miss it suggests the nearest
// known id so a typo in config or on the command line is easy to fix.
func (c *Catalog) Resolve(id string) (Template, error) {
	if t, ok := c.byID[id]; ok {
		return t, nil
	}
	if near := c.nearest(id); near != "" {
		return Template{}, fmt.Errorf("unknown template %q (did you mean %q?)", id, near)
	}
	return Template{}, fmt.Errorf("unknown template %q", id)
}

func (c *Catalog) nearest(id string) string {
	best, bestDist := "", 0
	ids := c.IDs()
	sort.Strings(ids) // deterministic tie-break
	for _, known := range ids {
		d := levenshtein.ComputeDistance(id, known)
		if best == "" || d < bestDist {
			best, bestDist = known, d
		}
	}
	if bestDist > len(id) {
		return ""
	}
	return best
}
