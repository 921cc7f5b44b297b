package i18n

// Translator is a locale-bound view of a resolver. It removes the locale
// argument from every call, which keeps per-conversation code short:
//
//	tr := bundle.Bound("de")
//	tr.T("greeting", nil)
type Translator struct {
	i18n   *I18n
	locale string
}

// Bound returns a Translator fixed to the given locale. The locale does not
// have to be registered; resolution follows the usual fallback rules.
func (i *I18n) Bound(locale string) *Translator {
	if locale == "" {
		locale = i.fallback
	}
	return &Translator{i18n: i, locale: locale}
}

// Locale returns the locale the translator is bound to.
func (t *Translator) Locale() string { return t.locale }

// T translates a key, returning the formatted key itself on failure.
func (t *Translator) T(key string, vars Vars, opts ...CallOption) string {
	return t.i18n.T(t.locale, key, vars, opts...)
}

// Translate is the error-returning variant of T.
func (t *Translator) Translate(key string, vars Vars, opts ...CallOption) (string, error) {
	return t.i18n.Translate(t.locale, key, vars, opts...)
}

// N translates a plural key for the bound locale.
func (t *Translator) N(key string, n int, vars Vars, opts ...CallOption) string {
	return t.i18n.N(t.locale, key, n, vars, opts...)
}

// Td translates a key with an explicit default template.
func (t *Translator) Td(key, defaultValue string, vars Vars, opts ...CallOption) string {
	return t.i18n.Td(t.locale, key, defaultValue, vars, opts...)
}
