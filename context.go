package i18n

import "context"

// localeContextKey is the key for storing the current locale in a context.
type localeContextKey struct{}

// SetLocale binds the current locale to the context. Bot handlers typically
// call this once per incoming update, before invoking command code.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale bound to the context.
// If no locale is set, it returns DefaultLocale.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLocale
	}
	return locale
}

// Tc translates a key using the locale bound to the context.
func (i *I18n) Tc(ctx context.Context, key string, vars Vars, opts ...CallOption) string {
	return i.T(GetLocale(ctx), key, vars, opts...)
}

// Nc translates a plural key using the locale bound to the context.
func (i *I18n) Nc(ctx context.Context, key string, n int, vars Vars, opts ...CallOption) string {
	return i.N(GetLocale(ctx), key, n, vars, opts...)
}

// TranslateCtx is the error-returning variant of Tc.
func (i *I18n) TranslateCtx(ctx context.Context, key string, vars Vars, opts ...CallOption) (string, error) {
	return i.Translate(GetLocale(ctx), key, vars, opts...)
}
