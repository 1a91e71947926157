package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yuna/weekcard/internal/sched"
	"github.com/yuna/weekcard/internal/tmpl"
)

// List renders one row per day with every entry on its own line. Suited
// to multi-entry templates where a horizontal strip would overflow.
type List struct {
	opts Options
}

func NewList(opts Options) *List {
	return &List{opts: opts}
}

func (l *List) Render(week sched.Week, t tmpl.Template) string {
	p := paletteFor(week.Theme)

	title := lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	day := lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	value := lipgloss.NewStyle().Foreground(p.text)
	label := lipgloss.NewStyle().Foreground(p.muted)
	offline := lipgloss.NewStyle().Foreground(p.offline).Italic(true)

	var rows []string
	for _, d := range dayOrder(l.opts.SundayFirst) {
		c, ok := week.Card(d)
		if !ok {
			continue
		}
		name := dayLabel(d, week.Meta.WeekStart, l.opts.DateFormat, l.opts.SundayFirst)
		if c.IsOffline {
			rows = append(rows, day.Render(name)+offline.Render(" offline"))
			continue
		}
		for i, e := range c.Entries {
			head := strings.Repeat(" ", len(name))
			if i == 0 {
				head = day.Render(name)
			}
			var parts []string
			for _, f := range t.Schema.Fields {
				if f.OfflineOnly {
					continue
				}
				parts = append(parts, label.Render(f.Key+":")+" "+value.Render(fieldText(e[f.Key], f)))
			}
			rows = append(rows, head+" "+strings.Join(parts, "  "))
		}
	}

	return title.Render(t.Name) + "\n" + strings.Join(rows, "\n")
}
