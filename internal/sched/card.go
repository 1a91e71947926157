// Package sched holds the in-memory week of schedule cards and the
// controllers that mutate it.
package sched

// DaysPerWeek is the fixed card count of a schedule.
const DaysPerWeek = 7

// Values maps schema field keys to their current values.
type Values map[string]any

func (v Values) clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Card is one day's editable record. Entries always has at least one
// element; flat (single-entry) templates read and write entry 0. Extra
// carries schema-external fields (offline memos and the like) that the
// core round-trips without interpreting.
type Card struct {
	Day       int            `json:"day"`
	IsOffline bool           `json:"is_offline"`
	Entries   []Values       `json:"entries"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// Value reads a field from the card's first entry.
func (c Card) Value(key string) any {
	if len(c.Entries) == 0 {
		return nil
	}
	return c.Entries[0][key]
}

func (c Card) clone() Card {
	out := c
	out.Entries = make([]Values, len(c.Entries))
	for i, e := range c.Entries {
		out.Entries[i] = e.clone()
	}
	if c.Extra != nil {
		out.Extra = make(map[string]any, len(c.Extra))
		for k, v := range c.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func cloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c.clone()
	}
	return out
}

// Meta is the global schedule metadata the core stores but does not
// interpret: profile text, image reference, displayed week start date.
type Meta struct {
	Profile   string `json:"profile,omitempty"`
	ImageRef  string `json:"image_ref,omitempty"`
	WeekStart string `json:"week_start,omitempty"`
}

// Week is the full read-only snapshot handed to renderers: the 7 cards,
// the active theme and the global metadata.
type Week struct {
	Cards []Card
	Theme string
	Meta  Meta
}

// Card returns the card for day, if day is in range.
func (w Week) Card(day int) (Card, bool) {
	for _, c := range w.Cards {
		if c.Day == day {
			return c, true
		}
	}
	return Card{}, false
}
