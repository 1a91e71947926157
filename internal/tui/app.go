// Package tui is the interactive schedule editor. It owns key handling
// and layout only; every mutation goes through the editor facade.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yuna/weekcard/internal/editor"
	"github.com/yuna/weekcard/internal/render"
	"github.com/yuna/weekcard/internal/sched"
	"github.com/yuna/weekcard/internal/schema"
)

// App drives one editing session over an activated editor.
type App struct {
	ctx       context.Context
	ed        *editor.Editor
	renderers *render.Registry

	order    [sched.DaysPerWeek]int
	pos      int
	fieldIdx int
	entryIdx int

	modal        modalState
	input        textinput.Model
	selectCursor int
	themeCursor  int
	metaTarget   metaTarget
	status       string
}

type modalState string

const (
	modalNone         modalState = ""
	modalEditField    modalState = "editField"
	modalSelectOption modalState = "selectOption"
	modalPickTheme    modalState = "pickTheme"
	modalEditMeta     modalState = "editMeta"
	modalConfirmReset modalState = "confirmReset"
)

type metaTarget string

const (
	metaProfile   metaTarget = "profile"
	metaWeekStart metaTarget = "week start"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

var dayNames = [sched.DaysPerWeek]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// New builds the app over an already activated editor. sundayFirst must
// match the renderer options so arrow keys walk the displayed order.
func New(ctx context.Context, ed *editor.Editor, renderers *render.Registry, sundayFirst bool) *App {
	ti := textinput.New()
	ti.CharLimit = 256
	order := [sched.DaysPerWeek]int{0, 1, 2, 3, 4, 5, 6}
	if sundayFirst {
		order = [sched.DaysPerWeek]int{6, 0, 1, 2, 3, 4, 5}
	}
	return &App{
		ctx:       ctx,
		ed:        ed,
		renderers: renderers,
		order:     order,
		input:     ti,
	}
}

// curDay is the schedule day under the cursor.
func (a *App) curDay() int {
	return a.order[a.pos]
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "left", "h":
		if a.pos > 0 {
			a.pos--
			a.clampSelection()
		}
	case "right", "l":
		if a.pos < sched.DaysPerWeek-1 {
			a.pos++
			a.clampSelection()
		}
	case "up", "k":
		if a.fieldIdx > 0 {
			a.fieldIdx--
		}
	case "down", "j":
		if a.fieldIdx < len(a.fields())-1 {
			a.fieldIdx++
		}
	case "[":
		if a.entryIdx > 0 {
			a.entryIdx--
		}
	case "]":
		if card, ok := a.ed.Week().Card(a.curDay()); ok && a.entryIdx < len(card.Entries)-1 {
			a.entryIdx++
		}
	case "a":
		if a.ed.Template().Schema.MultiEntry {
			a.ed.AddEntry(a.curDay())
			a.status = "entry added"
		}
	case "x":
		if a.ed.Template().Schema.MultiEntry {
			a.ed.RemoveEntry(a.curDay(), a.entryIdx)
			a.clampSelection()
			a.status = "entry removed"
		}
	case "enter":
		return a.openFieldEditor()
	case "o":
		a.ed.ToggleOffline(a.curDay())
	case "t":
		a.modal = modalPickTheme
		a.themeCursor = a.themeIndex()
	case "T":
		a.ed.ResetTheme()
		a.status = "theme reset"
	case "r":
		a.ed.ResetDay(a.curDay())
		a.status = fmt.Sprintf("%s reset", dayNames[a.curDay()])
	case "R":
		a.modal = modalConfirmReset
	case "p":
		return a, a.openMetaEditor(metaProfile, a.ed.Week().Meta.Profile)
	case "w":
		return a, a.openMetaEditor(metaWeekStart, a.ed.Week().Meta.WeekStart)
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalEditField, modalEditMeta:
		switch m.Type {
		case tea.KeyEsc:
			a.closeModal()
		case tea.KeyEnter:
			text := strings.TrimSpace(a.input.Value())
			mode := a.modal
			a.closeModal()
			if mode == modalEditMeta {
				a.commitMeta(text)
			} else {
				a.commitField(text)
			}
		default:
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(m)
			return a, cmd
		}
	case modalSelectOption:
		f := a.currentField()
		switch m.String() {
		case "esc":
			a.closeModal()
		case "up", "k":
			if a.selectCursor > 0 {
				a.selectCursor--
			}
		case "down", "j":
			if a.selectCursor < len(f.Options)-1 {
				a.selectCursor++
			}
		case "enter":
			opt := f.Options[a.selectCursor]
			a.closeModal()
			a.ed.UpdateEntryField(a.curDay(), a.entryIdx, f.Key, opt)
			a.status = fmt.Sprintf("%s = %s", f.Key, opt)
		}
	case modalPickTheme:
		themes := a.ed.Template().Themes
		switch m.String() {
		case "esc":
			a.closeModal()
		case "up", "k":
			if a.themeCursor > 0 {
				a.themeCursor--
			}
		case "down", "j":
			if a.themeCursor < len(themes)-1 {
				a.themeCursor++
			}
		case "enter":
			id := themes[a.themeCursor]
			a.closeModal()
			a.ed.UpdateTheme(id)
			a.status = "theme: " + id
		}
	case modalConfirmReset:
		switch m.String() {
		case "y", "Y":
			a.closeModal()
			a.ed.ResetAll(a.ctx)
			a.clampSelection()
			a.status = "week reset"
		case "n", "N", "esc":
			a.closeModal()
		}
	}
	return a, nil
}

func (a *App) openFieldEditor() (tea.Model, tea.Cmd) {
	f := a.currentField()
	if f.Key == "" {
		return a, nil
	}
	if f.Kind == schema.KindSelect {
		a.modal = modalSelectOption
		a.selectCursor = 0
		card, _ := a.ed.Week().Card(a.curDay())
		if cur, ok := entryValue(card, a.entryIdx, f.Key).(string); ok {
			for i, opt := range f.Options {
				if opt == cur {
					a.selectCursor = i
				}
			}
		}
		return a, nil
	}
	a.modal = modalEditField
	a.input.Placeholder = f.Placeholder
	card, _ := a.ed.Week().Card(a.curDay())
	a.input.SetValue(valueText(entryValue(card, a.entryIdx, f.Key)))
	a.input.CursorEnd()
	return a, a.input.Focus()
}

func (a *App) openMetaEditor(target metaTarget, current string) tea.Cmd {
	a.modal = modalEditMeta
	a.metaTarget = target
	a.input.Placeholder = ""
	a.input.SetValue(current)
	a.input.CursorEnd()
	return a.input.Focus()
}

func (a *App) commitField(text string) {
	f := a.currentField()
	var value any = text
	if f.Kind == schema.KindNumber {
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			a.status = fmt.Sprintf("%s: not a number", f.Key)
			return
		}
		value = n
	}
	a.ed.UpdateEntryField(a.curDay(), a.entryIdx, f.Key, value)
	a.status = f.Key + " updated"
}

func (a *App) commitMeta(text string) {
	meta := a.ed.Week().Meta
	switch a.metaTarget {
	case metaProfile:
		meta.Profile = text
	case metaWeekStart:
		meta.WeekStart = text
	}
	a.ed.UpdateMeta(meta)
	a.status = string(a.metaTarget) + " updated"
}

func (a *App) closeModal() {
	a.modal = modalNone
	a.input.Blur()
	a.input.SetValue("")
}

// clampSelection keeps the field and entry cursors valid after the day,
// the entry list, or the whole week changed under them.
func (a *App) clampSelection() {
	if n := len(a.fields()); a.fieldIdx >= n && n > 0 {
		a.fieldIdx = n - 1
	}
	card, ok := a.ed.Week().Card(a.curDay())
	if !ok || len(card.Entries) == 0 {
		a.entryIdx = 0
		return
	}
	if a.entryIdx >= len(card.Entries) {
		a.entryIdx = len(card.Entries) - 1
	}
}

func (a *App) fields() []schema.Field {
	return a.ed.Template().Schema.Fields
}

func (a *App) currentField() schema.Field {
	fields := a.fields()
	if a.fieldIdx < 0 || a.fieldIdx >= len(fields) {
		return schema.Field{}
	}
	return fields[a.fieldIdx]
}

func (a *App) themeIndex() int {
	cur := a.ed.Week().Theme
	for i, id := range a.ed.Template().Themes {
		if id == cur {
			return i
		}
	}
	return 0
}

func (a *App) View() string {
	tpl := a.ed.Template()
	week := a.ed.Week()

	var b strings.Builder
	b.WriteString(a.renderers.For(tpl.ID).Render(week, tpl))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("template: %s   theme: %s", tpl.ID, week.Theme)))
	b.WriteString("\n\n")
	b.WriteString(a.renderInspector(week))
	if a.modal != modalNone {
		b.WriteString("\n\n" + a.renderModal())
	}
	if a.status != "" {
		b.WriteString("\n" + dimStyle.Render(a.status))
	}
	b.WriteString("\n" + dimStyle.Render(a.helpLine(tpl.Schema.MultiEntry)))
	return b.String()
}

func (a *App) renderInspector(week sched.Week) string {
	card, ok := week.Card(a.curDay())
	if !ok {
		return ""
	}
	head := dayNames[a.curDay()]
	if card.IsOffline {
		head += "  (offline)"
	}
	if a.ed.Template().Schema.MultiEntry {
		head += fmt.Sprintf("  entry %d/%d", a.entryIdx+1, len(card.Entries))
	}
	out := titleStyle.Render(head) + "\n"
	for i, f := range a.fields() {
		marker := "  "
		if i == a.fieldIdx {
			marker = cursorStyle.Render("> ")
		}
		label := f.Key
		if f.Required {
			label += "*"
		}
		text := valueText(entryValue(card, a.entryIdx, f.Key))
		if text == "" {
			text = dimStyle.Render(f.Placeholder)
		}
		out += fmt.Sprintf("%s%-12s %s\n", marker, label, text)
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalEditField:
		f := a.currentField()
		return titleStyle.Render("Edit "+f.Key) + "\n" + a.input.View() + "\n[enter] Save  [esc] Cancel"
	case modalEditMeta:
		return titleStyle.Render("Edit "+string(a.metaTarget)) + "\n" + a.input.View() + "\n[enter] Save  [esc] Cancel"
	case modalSelectOption:
		f := a.currentField()
		out := titleStyle.Render("Select "+f.Key) + "\n"
		for i, opt := range f.Options {
			marker := " "
			if i == a.selectCursor {
				marker = ">"
			}
			out += fmt.Sprintf("%s %s\n", marker, opt)
		}
		return out + "[enter] Select  [esc] Cancel"
	case modalPickTheme:
		out := titleStyle.Render("Theme") + "\n"
		for i, id := range a.ed.Template().Themes {
			marker := " "
			if i == a.themeCursor {
				marker = ">"
			}
			out += fmt.Sprintf("%s %s\n", marker, id)
		}
		return out + "[enter] Select  [esc] Cancel"
	case modalConfirmReset:
		return titleStyle.Render("Reset the whole week?") + "\nCards and theme go back to defaults.\n[y] Yes  [n] No"
	default:
		return ""
	}
}

func (a *App) helpLine(multi bool) string {
	base := "←→ day  ↑↓ field  [enter] edit  [o] offline  [t] theme  [r] reset day  [R] reset all  [p] profile  [w] week  [q] quit"
	if multi {
		base = "←→ day  ↑↓ field  [ ] entry  [a] add  [x] remove  [enter] edit  [o] offline  [t] theme  [r] reset day  [R] reset all  [q] quit"
	}
	return base
}

func entryValue(card sched.Card, idx int, key string) any {
	if idx < 0 || idx >= len(card.Entries) {
		return nil
	}
	return card.Entries[idx][key]
}

func valueText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
