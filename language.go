package i18n

import "strings"

// Language is one entry of the locale table: a human-readable name, a locale
// code and a flat key-to-string translation map. The nested source document is
// flattened once at construction, so lookups are a single map access.
// A Language is immutable after creation and safe for concurrent use.
type Language struct {
	name         string
	code         string
	delimiter    string
	translations map[string]string
}

// LanguageOption configures a Language during construction.
type LanguageOption func(*Language)

// WithKeyDelimiter overrides the delimiter joining nested key paths.
// Default is ".".
func WithKeyDelimiter(delimiter string) LanguageOption {
	return func(l *Language) {
		if delimiter != "" {
			l.delimiter = delimiter
		}
	}
}

// NewLanguage builds a language table from a nested translation document.
//
// Example:
//
//	lang := i18n.NewLanguage("English", "en", map[string]any{
//		"hello": "Hello",
//		"nested": map[string]any{
//			"key": "Nested key",
//		},
//	})
//	lang.Raw("nested.key") // "Nested key", true
func NewLanguage(name, code string, doc map[string]any, opts ...LanguageOption) *Language {
	l := &Language{
		name:      name,
		code:      code,
		delimiter: DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.translations = Flatten(doc, l.delimiter)
	return l
}

// Name returns the human-readable language name.
func (l *Language) Name() string { return l.name }

// Code returns the locale code the language is registered under.
func (l *Language) Code() string { return l.code }

// Raw returns the flat table entry for key without any formatting.
func (l *Language) Raw(key string) (string, bool) {
	val, ok := l.translations[key]
	return val, ok
}

// Get resolves key against this language only and formats the template.
// Substitution values come from vars first and, unless NoReuse is set, from
// the language's own flat table, so one translation can reference another:
//
//	lang := i18n.NewLanguage("English", "en", map[string]any{
//		"you_lost": "You lost the {game}",
//		"game":     "game",
//	})
//	lang.Get("you_lost", nil) // "You lost the game"
func (l *Language) Get(key string, vars Vars, opts ...CallOption) (string, error) {
	return l.get(key, vars, newCallOptions(opts))
}

func (l *Language) get(key string, vars Vars, o *callOptions) (string, error) {
	tmpl, ok := l.translations[key]
	if !ok {
		return "", &ErrMissingTranslation{Key: key, Locale: l.code}
	}
	if tmpl == "" && !o.allowEmpty {
		return "", &ErrEmptyTranslation{Key: key, Locale: l.code}
	}
	return formatTemplate(tmpl, l.lookup(vars, o)), nil
}

// lookup builds the substitution source for formatTemplate. Caller vars take
// priority over table entries.
func (l *Language) lookup(vars Vars, o *callOptions) func(string) (string, bool) {
	return func(name string) (string, bool) {
		if v, ok := vars[name]; ok {
			return stringifyVar(v, o.listFormatter), true
		}
		if !o.noReuse {
			if s, ok := l.translations[name]; ok {
				return s, true
			}
		}
		return "", false
	}
}

// JoinList joins items with the given connector between all elements.
func (l *Language) JoinList(items []string, connector string) string {
	return strings.Join(items, connector)
}

// And joins items with the translation of the reserved "and_" key,
// e.g. "a, b and c" style output is up to the translation itself.
func (l *Language) And(items []string) (string, error) {
	conn, err := l.Get("and_", nil)
	if err != nil {
		return "", err
	}
	return l.JoinList(items, " "+conn+" "), nil
}

// Or joins items with the translation of the reserved "or_" key.
func (l *Language) Or(items []string) (string, error) {
	conn, err := l.Get("or_", nil)
	if err != nil {
		return "", err
	}
	return l.JoinList(items, " "+conn+" "), nil
}

// Len reports the number of flat entries in the table.
func (l *Language) Len() int { return len(l.translations) }
