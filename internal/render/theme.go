package render

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette is the color set one theme id maps to.
type palette struct {
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	offline lipgloss.Color
}

var palettes = map[string]palette{
	"mint": {
		accent:  lipgloss.Color("#94e2d5"),
		text:    lipgloss.Color("#cdd6f4"),
		muted:   lipgloss.Color("#6c7086"),
		offline: lipgloss.Color("#585b70"),
	},
	"plum": {
		accent:  lipgloss.Color("#cba6f7"),
		text:    lipgloss.Color("#cdd6f4"),
		muted:   lipgloss.Color("#6c7086"),
		offline: lipgloss.Color("#585b70"),
	},
	"peach": {
		accent:  lipgloss.Color("#fab387"),
		text:    lipgloss.Color("#cdd6f4"),
		muted:   lipgloss.Color("#6c7086"),
		offline: lipgloss.Color("#585b70"),
	},
	"mono": {
		accent:  lipgloss.Color("#a6adc8"),
		text:    lipgloss.Color("#cdd6f4"),
		muted:   lipgloss.Color("#6c7086"),
		offline: lipgloss.Color("#45475a"),
	},
}

// paletteFor resolves a theme id, falling back to mono for ids the
// renderer has no colors for (theme ids are not validated upstream).
func paletteFor(theme string) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes["mono"]
}

// dayNames indexed by day number, Monday first.
var dayNames = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// dayOrder is the column order the renderers walk the week in.
func dayOrder(sundayFirst bool) [7]int {
	if sundayFirst {
		return [7]int{6, 0, 1, 2, 3, 4, 5}
	}
	return [7]int{0, 1, 2, 3, 4, 5, 6}
}

// dayLabel is the day name plus its date when week_start carries a
// parseable ISO date. week_start is the date of the first displayed
// column, whichever day that is.
func dayLabel(d int, weekStart, layout string, sundayFirst bool) string {
	name := dayNames[d]
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil || layout == "" {
		return name
	}
	offset := d
	if sundayFirst {
		offset = (d + 1) % 7
	}
	return name + " " + start.AddDate(0, 0, offset).Format(layout)
}
