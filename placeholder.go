package i18n

import (
	"fmt"
	"strings"
)

// Vars holds caller-supplied substitution values for placeholder formatting.
// Values are stringified with fmt; []string values go through the per-call
// list formatter when one is set.
type Vars map[string]any

// formatTemplate substitutes placeholders of the form {name} in a single pass.
// Literal braces are escaped as {{ and }}. Placeholders without a value from
// lookup are kept verbatim, so partially-translated templates stay readable.
func formatTemplate(tmpl string, lookup func(name string) (string, bool)) string {
	if !strings.ContainsAny(tmpl, "{}") {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				// Unterminated placeholder, emit as-is.
				b.WriteByte('{')
				continue
			}
			name := tmpl[i+1 : i+1+end]
			if val, ok := lookup(name); ok {
				b.WriteString(val)
			} else {
				b.WriteString(tmpl[i : i+2+end])
			}
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				i++
			}
			b.WriteByte('}')
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// stringifyVar converts a substitution value to its string form.
func stringifyVar(v any, listFormatter func([]string) string) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if listFormatter != nil {
			return listFormatter(val)
		}
		return fmt.Sprintf("%v", val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
