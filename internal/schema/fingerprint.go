package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Fingerprint produces an order-sensitive structural serialization of a
// schema. Two schemas that would produce compatible card data yield the
// same fingerprint; any structural change (field added, removed, reordered,
// retyped, options or defaults changed) yields a different one.
//
// Presentation attributes (placeholder, toggles) are deliberately excluded
// so cosmetic template edits do not invalidate saved schedules.
func Fingerprint(s Schema) string {
	var b strings.Builder
	b.WriteString("v1")
	if s.MultiEntry {
		b.WriteString(";multi")
	}
	for _, f := range s.Fields {
		b.WriteByte(';')
		b.WriteString(escape(f.Key))
		b.WriteByte(':')
		b.WriteString(string(f.Kind))
		if f.Required {
			b.WriteString(":req")
		}
		if f.MaxLength > 0 {
			b.WriteString(":max=")
			b.WriteString(strconv.Itoa(f.MaxLength))
		}
		if len(f.Options) > 0 {
			b.WriteString(":opt=")
			for i, o := range f.Options {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(escape(o))
			}
		}
		if f.DefaultValue != nil {
			b.WriteString(":def=")
			b.WriteString(escape(fmt.Sprintf("%v", f.DefaultValue)))
		}
		if f.OfflineOnly {
			b.WriteString(":off")
		}
	}
	return b.String()
}

// escape keeps the serialization total: separator bytes inside keys,
// options or defaults cannot collide with the structure.
func escape(s string) string {
	r := strings.NewReplacer("%", "%25", ";", "%3B", ":", "%3A", ",", "%2C")
	return r.Replace(s)
}
