package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yuna/weekcard/internal/sched"
	"github.com/yuna/weekcard/internal/schema"
	"github.com/yuna/weekcard/internal/tmpl"
)

// Board renders one bordered card per day in a horizontal strip. It is
// the fallback renderer for every template family.
type Board struct {
	cardWidth int
	opts      Options
}

func NewBoard(opts Options) *Board {
	return &Board{cardWidth: 18, opts: opts}
}

func (b *Board) Render(week sched.Week, t tmpl.Template) string {
	p := paletteFor(week.Theme)

	title := lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	day := lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	value := lipgloss.NewStyle().Foreground(p.text)
	label := lipgloss.NewStyle().Foreground(p.muted)
	offline := lipgloss.NewStyle().Foreground(p.offline).Italic(true)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.muted).
		Padding(0, 1).
		Width(b.cardWidth)

	var cells []string
	for _, d := range dayOrder(b.opts.SundayFirst) {
		c, ok := week.Card(d)
		if !ok {
			continue
		}
		var lines []string
		lines = append(lines, day.Render(dayLabel(d, week.Meta.WeekStart, b.opts.DateFormat, b.opts.SundayFirst)))
		if c.IsOffline {
			lines = append(lines, offline.Render("offline"))
			for _, f := range t.Schema.Fields {
				if f.OfflineOnly {
					lines = append(lines, value.Render(fieldText(c.Value(f.Key), f)))
				}
			}
		} else {
			for _, f := range t.Schema.Fields {
				if f.OfflineOnly {
					continue
				}
				lines = append(lines, label.Render(f.Key)+" "+value.Render(fieldText(c.Value(f.Key), f)))
			}
		}
		cells = append(cells, box.Render(strings.Join(lines, "\n")))
	}

	header := title.Render(t.Name)
	if week.Meta.Profile != "" {
		header += label.Render("  ·  " + week.Meta.Profile)
	}
	if week.Meta.WeekStart != "" {
		header += label.Render("  ·  week of " + week.Meta.WeekStart)
	}
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// fieldText formats a stored value for display, clipping to the field's
// declared max length.
func fieldText(v any, f schema.Field) string {
	var s string
	switch tv := v.(type) {
	case nil:
		s = ""
	case string:
		s = tv
	case float64:
		if tv == float64(int64(tv)) {
			s = fmt.Sprintf("%d", int64(tv))
		} else {
			s = fmt.Sprintf("%g", tv)
		}
	default:
		s = fmt.Sprintf("%v", tv)
	}
	if s == "" {
		s = f.Placeholder
	}
	if f.MaxLength > 0 && len([]rune(s)) > f.MaxLength {
		s = string([]rune(s)[:f.MaxLength])
	}
	return s
}
