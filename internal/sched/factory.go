package sched

import "github.com/yuna/weekcard/internal/schema"

// TypeDefault returns the zero value for a field kind when the descriptor
// declares no default of its own.
func TypeDefault(k schema.Kind) any {
	switch k {
	case schema.KindTime:
		return "09:00"
	case schema.KindNumber:
		return float64(0)
	default: // text, textarea, select
		return ""
	}
}

func defaultValues(s schema.Schema) Values {
	v := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		if f.DefaultValue != nil {
			// canonicalize declared defaults (ints become float64)
			if cv, err := s.CheckValue(f.Key, f.DefaultValue); err == nil {
				v[f.Key] = cv
				continue
			}
		}
		v[f.Key] = TypeDefault(f.Kind)
	}
	return v
}

// DefaultCard builds the pristine card for one day of the given schema.
func DefaultCard(s schema.Schema, day int) Card {
	return Card{
		Day:       day,
		IsOffline: false,
		Entries:   []Values{defaultValues(s)},
	}
}

// DefaultWeek builds the pristine 7-card week, days 0..6 in order.
// Deterministic: the same schema always yields a deeply equal week.
func DefaultWeek(s schema.Schema) []Card {
	cards := make([]Card, DaysPerWeek)
	for day := 0; day < DaysPerWeek; day++ {
		cards[day] = DefaultCard(s, day)
	}
	return cards
}
