// Package persist serializes and restores schedule state, with schema
// compatibility checking and debounced autosaving.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/yuna/weekcard/internal/sched"
	"github.com/yuna/weekcard/internal/schema"
)

// Snapshot is the persisted unit for one template instance.
type Snapshot struct {
	Cards       []sched.Card `json:"cards"`
	Theme       string       `json:"theme"`
	Meta        sched.Meta   `json:"meta"`
	Fingerprint string       `json:"schema_fingerprint"`
}

func decodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}

// checkShape rejects structurally broken snapshots: wrong card count,
// duplicate or out-of-range days, or empty entry lists.
func checkShape(snap Snapshot) error {
	if len(snap.Cards) != sched.DaysPerWeek {
		return fmt.Errorf("want %d cards, got %d", sched.DaysPerWeek, len(snap.Cards))
	}
	var seen [sched.DaysPerWeek]bool
	for _, c := range snap.Cards {
		if c.Day < 0 || c.Day >= sched.DaysPerWeek {
			return fmt.Errorf("day %d out of range", c.Day)
		}
		if seen[c.Day] {
			return fmt.Errorf("day %d appears twice", c.Day)
		}
		seen[c.Day] = true
		if len(c.Entries) == 0 {
			return fmt.Errorf("day %d has no entries", c.Day)
		}
	}
	return nil
}

// checkValues verifies every stored value against the schema's type
// domains. Only meaningful once the fingerprint matched: the schema in
// hand is then the one that produced the cards.
func checkValues(snap Snapshot, s schema.Schema) error {
	for _, c := range snap.Cards {
		for _, e := range c.Entries {
			for key, v := range e {
				if _, err := s.CheckValue(key, v); err != nil {
					return fmt.Errorf("day %d: %w", c.Day, err)
				}
			}
		}
	}
	return nil
}
