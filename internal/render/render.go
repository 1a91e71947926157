// Package render draws read-only week snapshots as terminal boards. Each
// visual template family may register its own renderer; all of them
// consume sched.Week and never write state.
package render

import (
	"github.com/yuna/weekcard/internal/sched"
	"github.com/yuna/weekcard/internal/tmpl"
)

// Renderer draws one week for one template family.
type Renderer interface {
	Render(week sched.Week, t tmpl.Template) string
}

// Options adjust how the built-in renderers lay a week out.
type Options struct {
	SundayFirst bool   // put Sunday in the first column
	DateFormat  string // per-day date layout, used when week_start parses
}

// Registry maps template ids to renderers, with a fallback for template
// families that ship no dedicated renderer.
type Registry struct {
	byID     map[string]Renderer
	fallback Renderer
}

// NewRegistry builds a registry with the standard board renderer as
// fallback and the built-in per-template variants registered.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		byID:     make(map[string]Renderer),
		fallback: NewBoard(opts),
	}
	r.Register("cafe-menu", NewList(opts))
	return r
}

// Register wires a renderer to a template id, replacing any previous one.
func (r *Registry) Register(templateID string, renderer Renderer) {
	r.byID[templateID] = renderer
}

// For returns the renderer for a template id, or the fallback.
func (r *Registry) For(templateID string) Renderer {
	if renderer, ok := r.byID[templateID]; ok {
		return renderer
	}
	return r.fallback
}
