package sched

import (
	"fmt"

	"github.com/yuna/weekcard/internal/schema"
)

// Store holds the editable week for one template instance. Every mutation
// builds a fresh snapshot; callers never see aliased internal state.
// The store is not safe for concurrent use; the editor serializes access.
type Store struct {
	schema schema.Schema
	cards  []Card
	meta   Meta
}

// NewStore creates a store seeded with the schema's default week.
func NewStore(s schema.Schema) *Store {
	return &Store{
		schema: s,
		cards:  DefaultWeek(s),
	}
}

// Schema returns the schema the store validates mutations against.
func (st *Store) Schema() schema.Schema { return st.schema }

// Cards returns a deep copy of the current 7 cards.
func (st *Store) Cards() []Card { return cloneCards(st.cards) }

// Meta returns the uninterpreted global metadata.
func (st *Store) Meta() Meta { return st.meta }

// SetMeta replaces the global metadata wholesale.
func (st *Store) SetMeta(m Meta) { st.meta = m }

// ReplaceAll swaps in a full week, as used by load and reset paths.
func (st *Store) ReplaceAll(cards []Card) error {
	if err := checkWeekShape(cards); err != nil {
		return err
	}
	st.cards = cloneCards(cards)
	return nil
}

func checkWeekShape(cards []Card) error {
	if len(cards) != DaysPerWeek {
		return &ShapeError{Reason: fmt.Sprintf("want %d cards, got %d", DaysPerWeek, len(cards))}
	}
	var seen [DaysPerWeek]bool
	for _, c := range cards {
		if c.Day < 0 || c.Day >= DaysPerWeek {
			return &ShapeError{Reason: fmt.Sprintf("day %d out of range", c.Day)}
		}
		if seen[c.Day] {
			return &ShapeError{Reason: fmt.Sprintf("day %d appears twice", c.Day)}
		}
		seen[c.Day] = true
		if len(c.Entries) == 0 {
			return &ShapeError{Reason: fmt.Sprintf("day %d has no entries", c.Day)}
		}
	}
	return nil
}

// UpdateField sets one field on one card's first entry.
func (st *Store) UpdateField(day int, key string, value any) error {
	return st.UpdateEntryField(day, 0, key, value)
}

// UpdateEntryField sets one field on the idx-th entry of one card.
func (st *Store) UpdateEntryField(day, idx int, key string, value any) error {
	if day < 0 || day >= DaysPerWeek {
		return &RangeError{Day: day}
	}
	cv, err := st.schema.CheckValue(key, value)
	if err != nil {
		return &FieldError{Key: key, Err: err}
	}
	return st.mutate(day, func(c *Card) error {
		if idx < 0 || idx >= len(c.Entries) {
			return fmt.Errorf("day %d: entry %d out of range", day, idx)
		}
		c.Entries[idx][key] = cv
		return nil
	})
}

// ToggleOffline flips a day's offline flag. Involutive.
func (st *Store) ToggleOffline(day int) error {
	if day < 0 || day >= DaysPerWeek {
		return &RangeError{Day: day}
	}
	return st.mutate(day, func(c *Card) error {
		c.IsOffline = !c.IsOffline
		return nil
	})
}

// ResetDay replaces one card with the schema's default for that day.
func (st *Store) ResetDay(day int) error {
	if day < 0 || day >= DaysPerWeek {
		return &RangeError{Day: day}
	}
	return st.mutate(day, func(c *Card) error {
		*c = DefaultCard(st.schema, day)
		return nil
	})
}

// ResetAll replaces every card with the schema's default week.
func (st *Store) ResetAll() {
	st.cards = DefaultWeek(st.schema)
}

// AddEntry appends a default-valued entry to a day's card. Only
// multi-entry schemas may hold more than one.
func (st *Store) AddEntry(day int) error {
	if day < 0 || day >= DaysPerWeek {
		return &RangeError{Day: day}
	}
	if !st.schema.MultiEntry {
		return fmt.Errorf("schema is single-entry")
	}
	return st.mutate(day, func(c *Card) error {
		c.Entries = append(c.Entries, defaultValues(st.schema))
		return nil
	})
}

// RemoveEntry drops the idx-th entry of a day's card. The last entry can
// never be removed: cards own a non-empty entry list.
func (st *Store) RemoveEntry(day, idx int) error {
	if day < 0 || day >= DaysPerWeek {
		return &RangeError{Day: day}
	}
	return st.mutate(day, func(c *Card) error {
		if len(c.Entries) <= 1 {
			return fmt.Errorf("day %d: cannot remove the only entry", day)
		}
		if idx < 0 || idx >= len(c.Entries) {
			return fmt.Errorf("day %d: entry %d out of range", day, idx)
		}
		c.Entries = append(c.Entries[:idx], c.Entries[idx+1:]...)
		return nil
	})
}

// mutate rebuilds the card slice with fn applied to the card for day.
func (st *Store) mutate(day int, fn func(*Card) error) error {
	next := cloneCards(st.cards)
	for i := range next {
		if next[i].Day != day {
			continue
		}
		if err := fn(&next[i]); err != nil {
			return err
		}
		st.cards = next
		return nil
	}
	return &RangeError{Day: day}
}
