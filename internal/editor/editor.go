// Package editor composes the schedule store, theme controller and
// persistence manager behind one facade and runs the activation state
// machine. The presentation layer talks only to this package.
package editor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yuna/weekcard/internal/persist"
	"github.com/yuna/weekcard/internal/sched"
	"github.com/yuna/weekcard/internal/schema"
	"github.com/yuna/weekcard/internal/tmpl"
)

// State is the activation lifecycle of an editing session.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
)

// Editor is the single entry point for reading and mutating a week.
// Mutations are only live in StateReady; recoverable faults are logged
// and absorbed so the session always continues in a well-defined state.
// Only schema validation aborts activation.
type Editor struct {
	log     *zap.Logger
	state   State
	tpl     tmpl.Template
	store   *sched.Store
	theme   *sched.ThemeController
	persist *persist.Manager
}

// New builds an editor over a persistence manager. The editor starts
// Uninitialized; call Activate before anything else.
func New(p *persist.Manager, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		log:     log,
		state:   StateUninitialized,
		persist: p,
	}
}

// State reports where the session is in its lifecycle.
func (e *Editor) State() State { return e.state }

// Template returns the active template. Zero until Ready.
func (e *Editor) Template() tmpl.Template { return e.tpl }

// Activate validates the template's schema, restores persisted state
// (falling back to factory defaults) and opens the session for editing.
func (e *Editor) Activate(ctx context.Context, t tmpl.Template, defaultTheme string) error {
	if e.state != StateUninitialized {
		return fmt.Errorf("activate: session already %s", e.state)
	}
	if err := schema.Validate(t.Schema); err != nil {
		return fmt.Errorf("activate %q: %w", t.ID, err)
	}
	e.state = StateLoading
	e.log.Info("activating editor", zap.String("template", t.ID))

	if defaultTheme == "" {
		defaultTheme = t.DefaultTheme
	}
	def := persist.Snapshot{
		Cards:       sched.DefaultWeek(t.Schema),
		Theme:       defaultTheme,
		Fingerprint: schema.Fingerprint(t.Schema),
	}
	snap := e.persist.Load(ctx, def)

	e.tpl = t
	e.store = sched.NewStore(t.Schema)
	if err := e.store.ReplaceAll(snap.Cards); err != nil {
		// load already shape-checked, but a defaults fallback keeps this total
		e.log.Warn("restored cards rejected, using defaults", zap.Error(err))
		e.store.ResetAll()
	}
	e.store.SetMeta(snap.Meta)
	e.theme = sched.NewThemeController(defaultTheme)
	if snap.Theme != "" {
		e.theme.Update(snap.Theme)
	}

	e.state = StateReady
	e.log.Info("editor ready", zap.String("template", t.ID), zap.String("theme", e.theme.Current()))
	return nil
}

// Week returns a read-only snapshot of the current schedule.
func (e *Editor) Week() sched.Week {
	if e.state != StateReady {
		return sched.Week{}
	}
	return sched.Week{
		Cards: e.store.Cards(),
		Theme: e.theme.Current(),
		Meta:  e.store.Meta(),
	}
}

// UpdateField sets one field on one day and autosaves.
func (e *Editor) UpdateField(day int, key string, value any) {
	e.apply("update field", func() error { return e.store.UpdateField(day, key, value) })
}

// UpdateEntryField sets one field on the idx-th entry of a day and autosaves.
func (e *Editor) UpdateEntryField(day, idx int, key string, value any) {
	e.apply("update entry field", func() error { return e.store.UpdateEntryField(day, idx, key, value) })
}

// ToggleOffline flips a day's offline flag and autosaves.
func (e *Editor) ToggleOffline(day int) {
	e.apply("toggle offline", func() error { return e.store.ToggleOffline(day) })
}

// ResetDay restores one day to schema defaults and autosaves.
func (e *Editor) ResetDay(day int) {
	e.apply("reset day", func() error { return e.store.ResetDay(day) })
}

// AddEntry appends an entry to a multi-entry day and autosaves.
func (e *Editor) AddEntry(day int) {
	e.apply("add entry", func() error { return e.store.AddEntry(day) })
}

// RemoveEntry drops an entry from a multi-entry day and autosaves.
func (e *Editor) RemoveEntry(day, idx int) {
	e.apply("remove entry", func() error { return e.store.RemoveEntry(day, idx) })
}

// UpdateMeta replaces the schedule metadata and autosaves.
func (e *Editor) UpdateMeta(m sched.Meta) {
	e.apply("update meta", func() error { e.store.SetMeta(m); return nil })
}

// UpdateTheme switches the visual variant and autosaves.
func (e *Editor) UpdateTheme(id string) {
	if e.state != StateReady {
		e.log.Warn("theme update before ready, ignored")
		return
	}
	e.theme.Update(id)
	e.autosave()
}

// ResetTheme restores the configured default theme and autosaves.
func (e *Editor) ResetTheme() {
	if e.state != StateReady {
		e.log.Warn("theme reset before ready, ignored")
		return
	}
	e.theme.Reset()
	e.autosave()
}

// ResetAll restores factory defaults for cards and theme and clears the
// persisted entry. The session stays Ready.
func (e *Editor) ResetAll(ctx context.Context) {
	if e.state != StateReady {
		e.log.Warn("reset before ready, ignored")
		return
	}
	e.store.ResetAll()
	e.store.SetMeta(sched.Meta{})
	e.theme.Reset()
	e.persist.Clear(ctx)
	e.log.Info("schedule reset to defaults", zap.String("template", e.tpl.ID))
}

// Close flushes any pending autosave synchronously. Call once at session
// end; the editor must not be used afterwards.
func (e *Editor) Close(ctx context.Context) {
	if e.state != StateReady {
		return
	}
	e.persist.Flush(ctx)
	e.log.Info("editor closed", zap.String("template", e.tpl.ID))
}

// apply runs a store mutation and, on success, forwards the fresh
// snapshot to the debounced autosave. Recoverable store errors are
// logged and swallowed: the user-visible result is a no-op.
func (e *Editor) apply(op string, fn func() error) {
	if e.state != StateReady {
		e.log.Warn("mutation before ready, ignored", zap.String("op", op))
		return
	}
	if err := fn(); err != nil {
		e.log.Warn("mutation ignored", zap.String("op", op), zap.Error(err))
		return
	}
	e.autosave()
}

func (e *Editor) autosave() {
	e.persist.Autosave(persist.Snapshot{
		Cards: e.store.Cards(),
		Theme: e.theme.Current(),
		Meta:  e.store.Meta(),
	})
}
