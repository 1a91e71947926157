package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuna/weekcard/internal/sched"
	"github.com/yuna/weekcard/internal/schema"
	"github.com/yuna/weekcard/internal/tmpl"
)

func boardTemplate() tmpl.Template {
	return tmpl.Template{
		ID:           "stream-week",
		Name:         "Stream Week",
		DefaultTheme: "mint",
		Themes:       []string{"mint"},
		Schema: schema.Schema{Fields: []schema.Field{
			{Key: "time", Kind: schema.KindTime, DefaultValue: "20:00"},
			{Key: "topic", Kind: schema.KindText, MaxLength: 10},
			{Key: "memo", Kind: schema.KindTextarea, OfflineOnly: true},
		}},
	}
}

func weekFor(t tmpl.Template, theme string) sched.Week {
	return sched.Week{
		Cards: sched.DefaultWeek(t.Schema),
		Theme: theme,
		Meta:  sched.Meta{Profile: "Yuna", WeekStart: "2026-08-24"},
	}
}

func TestBoardRender(t *testing.T) {
	t.Parallel()
	tp := boardTemplate()
	week := weekFor(tp, "mint")
	week.Cards[2].Entries[0]["topic"] = "ranked"
	week.Cards[5].IsOffline = true
	week.Cards[5].Entries[0]["memo"] = "resting"

	out := NewBoard(Options{}).Render(week, tp)
	require.Contains(t, out, "Stream Week")
	require.Contains(t, out, "Yuna")
	require.Contains(t, out, "MON")
	require.Contains(t, out, "SUN")
	require.Contains(t, out, "ranked")
	require.Contains(t, out, "offline")
	require.Contains(t, out, "resting")
	require.Contains(t, out, "20:00")
}

func TestBoardClipsToMaxLength(t *testing.T) {
	t.Parallel()
	tp := boardTemplate()
	week := weekFor(tp, "mint")
	week.Cards[0].Entries[0]["topic"] = "a really long topic name"

	out := NewBoard(Options{}).Render(week, tp)
	require.Contains(t, out, "a really l")
	require.NotContains(t, out, "a really long")
}

func TestListRenderEntries(t *testing.T) {
	t.Parallel()
	tp := tmpl.Template{
		ID:   "cafe-menu",
		Name: "Cafe Menu Week",
		Schema: schema.Schema{
			MultiEntry: true,
			Fields: []schema.Field{
				{Key: "item", Kind: schema.KindText},
				{Key: "price", Kind: schema.KindNumber},
			},
		},
	}
	week := sched.Week{Cards: sched.DefaultWeek(tp.Schema), Theme: "peach"}
	week.Cards[0].Entries[0]["item"] = "latte"
	week.Cards[0].Entries[0]["price"] = float64(5)
	week.Cards[0].Entries = append(week.Cards[0].Entries, sched.Values{"item": "scone", "price": float64(4)})

	out := NewList(Options{}).Render(week, tp)
	require.Contains(t, out, "latte")
	require.Contains(t, out, "scone")
	require.Contains(t, out, "5")
}

func TestBoardDayOrderAndDates(t *testing.T) {
	t.Parallel()
	tp := boardTemplate()
	week := weekFor(tp, "mint")

	out := NewBoard(Options{SundayFirst: true, DateFormat: "01/02"}).Render(week, tp)
	require.Contains(t, out, "SUN 08/24")
	require.Contains(t, out, "MON 08/25")
	require.Contains(t, out, "SAT 08/30")
	require.Less(t, strings.Index(out, "SUN"), strings.Index(out, "MON"))
}

func TestDayLabelTolerantOfFreeTextWeekStart(t *testing.T) {
	t.Parallel()
	tp := boardTemplate()
	week := weekFor(tp, "mint")
	week.Meta.WeekStart = "sometime soon"

	out := NewBoard(Options{DateFormat: "01/02"}).Render(week, tp)
	require.Contains(t, out, "MON")
	require.NotContains(t, out, "MON 0")
}

func TestRegistryFallback(t *testing.T) {
	t.Parallel()
	r := NewRegistry(Options{})
	require.IsType(t, &List{}, r.For("cafe-menu"))
	require.IsType(t, &Board{}, r.For("never-registered"))
}

func TestUnknownThemeFallsBackToMono(t *testing.T) {
	t.Parallel()
	tp := boardTemplate()
	week := weekFor(tp, "not-a-theme")
	// must not panic and must still render content
	out := NewBoard(Options{}).Render(week, tp)
	require.Contains(t, out, "MON")
}
