package sched

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/yuna/weekcard/internal/schema"
)

func testSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Key: "time", Kind: schema.KindTime, DefaultValue: "09:00"},
		{Key: "topic", Kind: schema.KindText},
		{Key: "platform", Kind: schema.KindSelect, Options: []string{"twitch", "youtube"}, DefaultValue: "twitch"},
		{Key: "hours", Kind: schema.KindNumber},
	}}
}

func TestDefaultWeekShape(t *testing.T) {
	t.Parallel()
	cards := DefaultWeek(testSchema())
	require.Len(t, cards, DaysPerWeek)

	seen := map[int]bool{}
	for _, c := range cards {
		require.False(t, seen[c.Day], "day %d twice", c.Day)
		seen[c.Day] = true
		require.GreaterOrEqual(t, c.Day, 0)
		require.Less(t, c.Day, DaysPerWeek)
		require.False(t, c.IsOffline)
		require.Len(t, c.Entries, 1)
	}
}

func TestDefaultCardValues(t *testing.T) {
	t.Parallel()
	c := DefaultCard(testSchema(), 3)

	require.Equal(t, 3, c.Day)
	require.False(t, c.IsOffline)
	require.Equal(t, "09:00", c.Value("time"))
	require.Equal(t, "", c.Value("topic"))
	require.Equal(t, "twitch", c.Value("platform"))
	require.Equal(t, float64(0), c.Value("hours"))
}

func TestDefaultValueRuntimeTypes(t *testing.T) {
	t.Parallel()
	s := schema.Schema{Fields: []schema.Field{
		{Key: "t", Kind: schema.KindTime},
		{Key: "a", Kind: schema.KindText},
		{Key: "b", Kind: schema.KindTextarea},
		{Key: "c", Kind: schema.KindSelect, Options: []string{"x"}},
		{Key: "n", Kind: schema.KindNumber},
	}}
	c := DefaultCard(s, 0)

	require.Regexp(t, `^\d{2}:\d{2}$`, c.Value("t"))
	require.IsType(t, "", c.Value("a"))
	require.IsType(t, "", c.Value("b"))
	require.IsType(t, "", c.Value("c"))
	require.IsType(t, float64(0), c.Value("n"))
}

func TestDefaultWeekDeterministic(t *testing.T) {
	t.Parallel()
	a := DefaultWeek(testSchema())
	b := DefaultWeek(testSchema())
	require.Empty(t, cmp.Diff(a, b))
}

func TestNumericDefaultCanonicalized(t *testing.T) {
	t.Parallel()
	s := schema.Schema{Fields: []schema.Field{
		{Key: "n", Kind: schema.KindNumber, DefaultValue: 5}, // int in the declaration
	}}
	require.Equal(t, float64(5), DefaultCard(s, 0).Value("n"))
}
