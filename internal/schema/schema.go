// Package schema defines the editable-field schema a visual template
// declares, and validates it before an editing session may adopt it.
package schema

import "fmt"

// Kind enumerates the supported field kinds.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindTime     Kind = "time"
	KindSelect   Kind = "select"
	KindNumber   Kind = "number"
)

// Known reports whether k is one of the supported kinds.
func (k Kind) Known() bool {
	switch k {
	case KindText, KindTextarea, KindTime, KindSelect, KindNumber:
		return true
	}
	return false
}

// Field describes one editable attribute of a schedule card.
type Field struct {
	Key          string
	Kind         Kind
	Placeholder  string
	Required     bool
	MaxLength    int      // text/textarea only
	Options      []string // select only, must be non-empty
	DefaultValue any
	OfflineOnly  bool
}

// Toggles carries presentation-only switches. The core round-trips them
// but attaches no behavior.
type Toggles struct {
	ShowProfile bool
	ShowWeekBar bool
	ShowMemo    bool
}

// Schema is the ordered field list for one template, plus presentation
// metadata. MultiEntry schemas let a day hold several entries instead of
// one flat record.
type Schema struct {
	Fields     []Field
	MultiEntry bool
	Toggles    Toggles
}

// Field returns the descriptor registered under key.
func (s Schema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Keys returns the field keys in declaration order.
func (s Schema) Keys() []string {
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, f.Key)
	}
	return out
}

// ValidationError reports a schema that must not be used. It is the only
// fatal error in the editing core: activation is blocked on it.
type ValidationError struct {
	Key    string // offending field key, empty for schema-level faults
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid schema: %s", e.Reason)
	}
	return fmt.Sprintf("invalid schema: field %q: %s", e.Key, e.Reason)
}

// Validate checks a schema before it is used. Pure: no side effects.
func Validate(s Schema) error {
	if len(s.Fields) == 0 {
		return &ValidationError{Reason: "no fields"}
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Key == "" {
			return &ValidationError{Reason: "empty field key"}
		}
		if _, dup := seen[f.Key]; dup {
			return &ValidationError{Key: f.Key, Reason: "duplicate key"}
		}
		seen[f.Key] = struct{}{}
		if !f.Kind.Known() {
			return &ValidationError{Key: f.Key, Reason: fmt.Sprintf("unknown kind %q", f.Kind)}
		}
		if f.Kind == KindSelect && len(f.Options) == 0 {
			return &ValidationError{Key: f.Key, Reason: "select field without options"}
		}
		if f.MaxLength != 0 && f.Kind != KindText && f.Kind != KindTextarea {
			return &ValidationError{Key: f.Key, Reason: fmt.Sprintf("max length not allowed for kind %q", f.Kind)}
		}
		if f.DefaultValue != nil {
			if _, err := domainValue(f.Kind, f.DefaultValue); err != nil {
				return &ValidationError{Key: f.Key, Reason: fmt.Sprintf("default value: %v", err)}
			}
		}
	}
	return nil
}

// CheckValue verifies that key is registered and that v lies in the type
// domain implied by the field's kind, returning the canonical form
// (numbers normalize to float64). Used at every mutation boundary.
func (s Schema) CheckValue(key string, v any) (any, error) {
	f, ok := s.Field(key)
	if !ok {
		return nil, fmt.Errorf("unknown field %q", key)
	}
	cv, err := domainValue(f.Kind, v)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return cv, nil
}

func domainValue(k Kind, v any) (any, error) {
	switch k {
	case KindText, KindTextarea, KindTime, KindSelect:
		sv, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("want string for kind %q, got %T", k, v)
		}
		return sv, nil
	case KindNumber:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
		return nil, fmt.Errorf("want number, got %T", v)
	}
	return nil, fmt.Errorf("unknown kind %q", k)
}
