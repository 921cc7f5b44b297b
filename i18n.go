package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strconv"
)

// DefaultLocale is used when no locale is bound to a context.
const DefaultLocale = "en"

// I18n resolves translation keys against a set of registered languages with a
// single fallback step. It is read-only after construction and safe for
// concurrent use.
type I18n struct {
	languages  map[string]*Language
	fallback   string
	delimiter  string
	logger     *slog.Logger
	missingLog bool
}

// New creates a resolver from prebuilt languages. The fallback code must match
// one of the registered languages. Duplicate codes: last registration wins.
func New(languages []*Language, fallback string, opts ...Option) (*I18n, error) {
	i := &I18n{
		languages: make(map[string]*Language, len(languages)),
		fallback:  fallback,
		delimiter: DefaultDelimiter,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}

	if len(languages) == 0 {
		return nil, ErrNoLanguages
	}
	if fallback == "" {
		return nil, ErrInvalidFallback
	}
	for _, lang := range languages {
		i.languages[lang.Code()] = lang
	}
	if _, ok := i.languages[fallback]; !ok {
		return nil, &ErrUnknownLocale{Locale: fallback}
	}

	i.logger.Info("translations registered", "locales", i.locales(), "fallback", fallback)
	return i, nil
}

// NewFromAdapter loads locale documents through the adapter and builds one
// language per locale, using the code as the display name. The configured
// delimiter applies to the flattening of every loaded document.
func NewFromAdapter(ctx context.Context, adapter Adapter, fallback string, opts ...Option) (*I18n, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	cfg := &I18n{delimiter: DefaultDelimiter, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(cfg)
	}

	docs, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	languages := make([]*Language, 0, len(docs))
	for code, doc := range docs {
		languages = append(languages, NewLanguage(code, code, doc, WithKeyDelimiter(cfg.delimiter)))
	}

	return New(languages, fallback, opts...)
}

// Translate resolves key for the given locale and formats the template with
// vars. An unknown locale resolves against the fallback language, and a key
// missing in the selected language is retried against the fallback language
// once; NoFallback disables both steps.
func (i *I18n) Translate(locale, key string, vars Vars, opts ...CallOption) (string, error) {
	o := newCallOptions(opts)

	lang, ok := i.languages[locale]
	if !ok {
		if o.noFallback {
			return "", &ErrUnknownLocale{Locale: locale}
		}
		if i.missingLog {
			i.logger.Warn("Locale not registered, using fallback", "locale", locale, "key", key, "fallback", i.fallback)
		}
		locale = i.fallback
		lang = i.languages[locale]
	}

	out, err := lang.get(key, vars, o)
	if err == nil {
		return out, nil
	}

	if o.noFallback || locale == i.fallback {
		if i.missingLog {
			i.logger.Warn("Translation not found", "locale", locale, "key", key)
		}
		return "", errors.Join(&ErrMissingTranslation{Key: key, Locale: locale, Fallback: i.fallback}, err)
	}

	out, ferr := i.languages[i.fallback].get(key, vars, o)
	if ferr != nil {
		if i.missingLog {
			i.logger.Warn("Translation not found", "locale", locale, "key", key, "fallback", i.fallback)
		}
		return "", errors.Join(&ErrMissingTranslation{Key: key, Locale: locale, Fallback: i.fallback}, err, ferr)
	}
	return out, nil
}

// T is the lenient variant of Translate: on any failure it returns the key
// itself, formatted with vars, so templates degrade visibly instead of
// breaking the caller.
func (i *I18n) T(locale, key string, vars Vars, opts ...CallOption) string {
	out, err := i.Translate(locale, key, vars, opts...)
	if err != nil {
		return formatVars(key, vars, newCallOptions(opts))
	}
	return out
}

// Td resolves key with an explicit default template used when the key cannot
// be resolved for either locale.
func (i *I18n) Td(locale, key, defaultValue string, vars Vars, opts ...CallOption) string {
	out, err := i.Translate(locale, key, vars, opts...)
	if err != nil {
		return formatVars(defaultValue, vars, newCallOptions(opts))
	}
	return out
}

// N resolves a pluralized key. The plural form is selected by n via flat
// suffix entries: "zero" (falling back to "other") for n=0, "one" for n=±1 and
// "other" otherwise, with the bare key as last resort. The count is injected
// as the "count" var unless the caller supplied one.
//
// Example:
//
//	// "items.zero": "No items"
//	// "items.one":  "{count} item"
//	// "items.other": "{count} items"
//	bundle.N("en", "items", 5, nil) // "5 items"
func (i *I18n) N(locale, key string, n int, vars Vars, opts ...CallOption) string {
	d := i.delimiter

	var candidates []string
	switch {
	case n == 0:
		candidates = []string{key + d + "zero", key + d + "other", key}
	case n == 1 || n == -1:
		candidates = []string{key + d + "one", key}
	default:
		candidates = []string{key + d + "other", key}
	}

	if _, ok := vars["count"]; !ok {
		merged := make(Vars, len(vars)+1)
		for k, v := range vars {
			merged[k] = v
		}
		merged["count"] = strconv.Itoa(n)
		vars = merged
	}

	// All plural forms of the requested locale are preferred over any form of
	// the fallback locale, so a missing "zero" entry resolves to the locale's
	// own "other" form first.
	o := newCallOptions(opts)
	strict := append(append(make([]CallOption, 0, len(opts)+1), opts...), NoFallback())
	for _, candidate := range candidates {
		if out, err := i.Translate(locale, candidate, vars, strict...); err == nil {
			return out
		}
	}
	if !o.noFallback && locale != i.fallback {
		for _, candidate := range candidates {
			if out, err := i.Translate(i.fallback, candidate, vars, strict...); err == nil {
				return out
			}
		}
	}

	if i.missingLog {
		i.logger.Warn("Pluralization not found", "locale", locale, "key", key, "n", n)
	}
	return formatVars(key, vars, o)
}

// Has reports whether the key exists for the locale, without fallback.
func (i *I18n) Has(locale, key string) bool {
	lang, ok := i.languages[locale]
	if !ok {
		return false
	}
	_, ok = lang.Raw(key)
	return ok
}

// Language returns the registered language for a locale code.
func (i *I18n) Language(locale string) (*Language, bool) {
	lang, ok := i.languages[locale]
	return lang, ok
}

// Locales returns the registered locale codes, sorted.
func (i *I18n) Locales() []string {
	return i.locales()
}

func (i *I18n) locales() []string {
	codes := make([]string, 0, len(i.languages))
	for code := range i.languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Fallback returns the fallback locale code.
func (i *I18n) Fallback() string {
	return i.fallback
}

// ExportJSON returns the flat translation table of a locale as JSON,
// useful for shipping translations to client-side bot dashboards.
func (i *I18n) ExportJSON(locale string) (string, error) {
	lang, ok := i.languages[locale]
	if !ok {
		return "", &ErrUnknownLocale{Locale: locale}
	}
	data, err := json.Marshal(lang.translations)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatVars formats a template with caller vars only; used for key and
// default-value fallbacks.
func formatVars(tmpl string, vars Vars, o *callOptions) string {
	if len(vars) == 0 {
		return tmpl
	}
	return formatTemplate(tmpl, func(name string) (string, bool) {
		v, ok := vars[name]
		if !ok {
			return "", false
		}
		return stringifyVar(v, o.listFormatter), true
	})
}
