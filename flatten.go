package i18n

import (
	"fmt"
	"maps"
	"strconv"
)

// DefaultDelimiter joins nested key paths when no delimiter is configured.
const DefaultDelimiter = "."

// Flatten converts an arbitrarily nested translation document into a flat
// key-to-string map. Map keys are joined with the delimiter, sequence elements
// flatten under their numeric index, and non-string leaves are stringified.
//
// Example:
//
//	Flatten(map[string]any{
//		"greeting": "Hello",
//		"nested":   map[string]any{"key": "Nested key"},
//		"choices":  []any{"yes", "no"},
//	}, ".")
//	// => {"greeting": "Hello", "nested.key": "Nested key", "choices.0": "yes", "choices.1": "no"}
func Flatten(doc map[string]any, delimiter string) map[string]string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	result := make(map[string]string, len(doc))
	for key, value := range doc {
		flattenValue(result, key, value, delimiter)
	}
	return result
}

func flattenValue(dst map[string]string, prefix string, value any, delimiter string) {
	switch v := value.(type) {
	case string:
		dst[prefix] = v
	case map[string]any:
		for key, sub := range v {
			flattenValue(dst, prefix+delimiter+key, sub, delimiter)
		}
	case map[string]string:
		for key, sub := range v {
			dst[prefix+delimiter+key] = sub
		}
	case map[any]any:
		// Older YAML decoders produce any-keyed maps; non-string keys are dropped.
		for key, sub := range v {
			if ks, ok := key.(string); ok {
				flattenValue(dst, prefix+delimiter+ks, sub, delimiter)
			}
		}
	case []any:
		for idx, sub := range v {
			flattenValue(dst, prefix+delimiter+strconv.Itoa(idx), sub, delimiter)
		}
	case []string:
		for idx, sub := range v {
			dst[prefix+delimiter+strconv.Itoa(idx)] = sub
		}
	case nil:
		dst[prefix] = ""
	case fmt.Stringer:
		dst[prefix] = v.String()
	default:
		dst[prefix] = fmt.Sprintf("%v", v)
	}
}

// mergeDocs merges src into dst per locale, overwriting duplicate keys.
func mergeDocs(dst, src map[string]map[string]any) {
	for locale, doc := range src {
		if dst[locale] == nil {
			dst[locale] = make(map[string]any, len(doc))
		}
		maps.Copy(dst[locale], doc)
	}
}
