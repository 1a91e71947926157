package sched

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/yuna/weekcard/internal/schema"
)

func TestUpdateFieldIdempotent(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())

	require.NoError(t, st.UpdateField(3, "topic", "방송 예고"))
	once := st.Cards()
	require.NoError(t, st.UpdateField(3, "topic", "방송 예고"))
	require.Empty(t, cmp.Diff(once, st.Cards()))

	for _, c := range st.Cards() {
		if c.Day == 3 {
			require.Equal(t, "방송 예고", c.Value("topic"))
			continue
		}
		require.Equal(t, "", c.Value("topic"), "day %d changed", c.Day)
	}
}

func TestUpdateFieldOutOfRange(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())
	before := st.Cards()

	var re *RangeError
	require.ErrorAs(t, st.UpdateField(7, "topic", "x"), &re)
	require.ErrorAs(t, st.UpdateField(-1, "topic", "x"), &re)
	require.Empty(t, cmp.Diff(before, st.Cards()))
}

func TestUpdateFieldRejectsUnknownKeyAndBadDomain(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())
	before := st.Cards()

	var fe *FieldError
	require.ErrorAs(t, st.UpdateField(1, "ghost", "x"), &fe)
	require.ErrorAs(t, st.UpdateField(1, "topic", 42), &fe)
	require.ErrorAs(t, st.UpdateField(1, "hours", "soon"), &fe)
	require.Empty(t, cmp.Diff(before, st.Cards()))

	// store does not coerce beyond numeric canonicalization
	require.NoError(t, st.UpdateField(1, "hours", 2))
	c, ok := Week{Cards: st.Cards()}.Card(1)
	require.True(t, ok)
	require.Equal(t, float64(2), c.Value("hours"))
}

func TestToggleOfflineInvolutive(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())

	require.NoError(t, st.ToggleOffline(3))
	c, _ := Week{Cards: st.Cards()}.Card(3)
	require.True(t, c.IsOffline)

	require.NoError(t, st.ToggleOffline(3))
	c, _ = Week{Cards: st.Cards()}.Card(3)
	require.False(t, c.IsOffline)
}

func TestResetDay(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())
	require.NoError(t, st.UpdateField(2, "topic", "collab"))
	require.NoError(t, st.ToggleOffline(2))
	require.NoError(t, st.UpdateField(4, "topic", "keep me"))

	require.NoError(t, st.ResetDay(2))

	c, _ := Week{Cards: st.Cards()}.Card(2)
	require.Empty(t, cmp.Diff(DefaultCard(testSchema(), 2), c))
	kept, _ := Week{Cards: st.Cards()}.Card(4)
	require.Equal(t, "keep me", kept.Value("topic"))
}

func TestResetAll(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())
	for day := 0; day < DaysPerWeek; day++ {
		require.NoError(t, st.UpdateField(day, "topic", "x"))
	}
	require.NoError(t, st.ToggleOffline(5))

	st.ResetAll()
	require.Empty(t, cmp.Diff(DefaultWeek(testSchema()), st.Cards()))
}

func TestReplaceAllShapeValidation(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())

	var se *ShapeError
	require.ErrorAs(t, st.ReplaceAll(nil), &se)

	short := DefaultWeek(testSchema())[:6]
	require.ErrorAs(t, st.ReplaceAll(short), &se)

	dup := DefaultWeek(testSchema())
	dup[6].Day = 0
	require.ErrorAs(t, st.ReplaceAll(dup), &se)

	hollow := DefaultWeek(testSchema())
	hollow[2].Entries = nil
	require.ErrorAs(t, st.ReplaceAll(hollow), &se)

	good := DefaultWeek(testSchema())
	good[3].Entries[0]["topic"] = "restored"
	require.NoError(t, st.ReplaceAll(good))
	c, _ := Week{Cards: st.Cards()}.Card(3)
	require.Equal(t, "restored", c.Value("topic"))
}

func TestReplaceAllCopies(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())
	in := DefaultWeek(testSchema())
	require.NoError(t, st.ReplaceAll(in))

	in[0].Entries[0]["topic"] = "mutated after the fact"
	c, _ := Week{Cards: st.Cards()}.Card(0)
	require.Equal(t, "", c.Value("topic"))
}

func multiSchema() schema.Schema {
	s := testSchema()
	s.MultiEntry = true
	return s
}

func TestEntryOps(t *testing.T) {
	t.Parallel()
	st := NewStore(multiSchema())

	require.Error(t, st.RemoveEntry(0, 0), "sole entry must survive")

	require.NoError(t, st.AddEntry(0))
	require.NoError(t, st.UpdateEntryField(0, 1, "topic", "late show"))

	c, _ := Week{Cards: st.Cards()}.Card(0)
	require.Len(t, c.Entries, 2)
	require.Equal(t, "", c.Entries[0]["topic"])
	require.Equal(t, "late show", c.Entries[1]["topic"])

	require.Error(t, st.UpdateEntryField(0, 5, "topic", "x"))

	require.NoError(t, st.RemoveEntry(0, 0))
	c, _ = Week{Cards: st.Cards()}.Card(0)
	require.Len(t, c.Entries, 1)
	require.Equal(t, "late show", c.Entries[0]["topic"])
}

func TestAddEntrySingleEntrySchema(t *testing.T) {
	t.Parallel()
	st := NewStore(testSchema())
	require.Error(t, st.AddEntry(0))
}

func TestThemeController(t *testing.T) {
	t.Parallel()
	tc := NewThemeController("mint")
	require.Equal(t, "mint", tc.Current())

	tc.Update("plum")
	require.Equal(t, "plum", tc.Current())

	// no validation against a registry: ids pass through untouched
	tc.Update("definitely-unregistered")
	require.Equal(t, "definitely-unregistered", tc.Current())

	tc.Reset()
	require.Equal(t, "mint", tc.Current())
}
