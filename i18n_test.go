package i18n_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatterkit/i18n"
)

func newBundle(t *testing.T) *i18n.I18n {
	t.Helper()

	en := i18n.NewLanguage("English", "en", map[string]any{
		"hello":      "Hello, {name}!",
		"en_only":    "Only English",
		"empty":      "",
		"both":       "Both in English",
		"items":      map[string]any{"zero": "No items", "one": "{count} item", "other": "{count} items"},
		"you_lost":   "You lost the {game}",
		"game":       "game",
		"farewells":  []any{"Bye", "See you"},
		"greetings_": map[string]any{"formal": "Good day"},
	})
	fr := i18n.NewLanguage("French", "fr", map[string]any{
		"hello": "Bonjour, {name}!",
		"both":  "Both in French",
		"items": map[string]any{"one": "{count} élément", "other": "{count} éléments"},
	})

	bundle, err := i18n.New([]*i18n.Language{en, fr}, "en")
	require.NoError(t, err)
	return bundle
}

func TestNewValidation(t *testing.T) {
	en := i18n.NewLanguage("English", "en", map[string]any{"hello": "Hello"})

	_, err := i18n.New(nil, "en")
	assert.ErrorIs(t, err, i18n.ErrNoLanguages)

	_, err = i18n.New([]*i18n.Language{en}, "")
	assert.ErrorIs(t, err, i18n.ErrInvalidFallback)

	_, err = i18n.New([]*i18n.Language{en}, "de")
	var unknown *i18n.ErrUnknownLocale
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "de", unknown.Locale)
}

func TestNewDuplicateCodesLastWins(t *testing.T) {
	first := i18n.NewLanguage("First", "en", map[string]any{"key": "first"})
	second := i18n.NewLanguage("Second", "en", map[string]any{"key": "second"})

	bundle, err := i18n.New([]*i18n.Language{first, second}, "en")
	require.NoError(t, err)

	got, err := bundle.Translate("en", "key", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestTranslate(t *testing.T) {
	bundle := newBundle(t)

	got, err := bundle.Translate("fr", "hello", i18n.Vars{"name": "Marie"})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour, Marie!", got)

	got, err = bundle.Translate("en", "hello", i18n.Vars{"name": "John"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, John!", got)
}

func TestTranslateUnknownLocaleFallsBack(t *testing.T) {
	bundle := newBundle(t)

	got, err := bundle.Translate("de", "hello", i18n.Vars{"name": "Hans"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Hans!", got)
}

func TestTranslateUnknownLocaleNoFallback(t *testing.T) {
	bundle := newBundle(t)

	_, err := bundle.Translate("de", "hello", nil, i18n.NoFallback())
	var unknown *i18n.ErrUnknownLocale
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "de", unknown.Locale)
}

func TestTranslateMissingKeyRetriesFallback(t *testing.T) {
	bundle := newBundle(t)

	// "en_only" is absent from French, so the fallback language serves it.
	got, err := bundle.Translate("fr", "en_only", nil)
	require.NoError(t, err)
	assert.Equal(t, "Only English", got)

	// The requested locale wins when it has the key.
	got, err = bundle.Translate("fr", "both", nil)
	require.NoError(t, err)
	assert.Equal(t, "Both in French", got)
}

func TestTranslateMissingKeyNoFallback(t *testing.T) {
	bundle := newBundle(t)

	_, err := bundle.Translate("fr", "en_only", nil, i18n.NoFallback())
	var miss *i18n.ErrMissingTranslation
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "en_only", miss.Key)
	assert.Equal(t, "fr", miss.Locale)
}

func TestTranslateMissingEverywhere(t *testing.T) {
	bundle := newBundle(t)

	_, err := bundle.Translate("fr", "nope", nil)
	var miss *i18n.ErrMissingTranslation
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "nope", miss.Key)
	assert.Equal(t, "fr", miss.Locale)
	assert.Equal(t, "en", miss.Fallback)
}

func TestTranslateEmptyBehavesLikeMissing(t *testing.T) {
	bundle := newBundle(t)

	_, err := bundle.Translate("en", "empty", nil)
	require.Error(t, err)

	// Both the resolver-level and the inner empty error are reachable.
	var miss *i18n.ErrMissingTranslation
	assert.ErrorAs(t, err, &miss)
	var empty *i18n.ErrEmptyTranslation
	assert.ErrorAs(t, err, &empty)

	got, err := bundle.Translate("en", "empty", nil, i18n.AllowEmpty())
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestT(t *testing.T) {
	bundle := newBundle(t)

	assert.Equal(t, "Bonjour, Marie!", bundle.T("fr", "hello", i18n.Vars{"name": "Marie"}))

	// On failure T returns the key itself, formatted with vars.
	assert.Equal(t, "missing.key", bundle.T("fr", "missing.key", nil))
	assert.Equal(t, "greeting for Ann", bundle.T("en", "greeting for {name}", i18n.Vars{"name": "Ann"}))
}

func TestTd(t *testing.T) {
	bundle := newBundle(t)

	assert.Equal(t, "Both in French", bundle.Td("fr", "both", "default", nil))
	assert.Equal(t, "Hi, Ann!", bundle.Td("fr", "missing", "Hi, {name}!", i18n.Vars{"name": "Ann"}))
}

func TestN(t *testing.T) {
	bundle := newBundle(t)

	assert.Equal(t, "No items", bundle.N("en", "items", 0, nil))
	assert.Equal(t, "1 item", bundle.N("en", "items", 1, nil))
	assert.Equal(t, "5 items", bundle.N("en", "items", 5, nil))

	// French has no "zero" form; "other" serves n=0.
	assert.Equal(t, "0 éléments", bundle.N("fr", "items", 0, nil))
	assert.Equal(t, "1 élément", bundle.N("fr", "items", 1, nil))

	// Caller-supplied count wins over the injected one.
	assert.Equal(t, "many items", bundle.N("en", "items", 7, i18n.Vars{"count": "many"}))

	// Unknown key falls back to the key itself.
	assert.Equal(t, "widgets", bundle.N("en", "widgets", 3, nil))
}

func TestHas(t *testing.T) {
	bundle := newBundle(t)

	assert.True(t, bundle.Has("en", "en_only"))
	assert.True(t, bundle.Has("en", "items.other"))
	assert.False(t, bundle.Has("fr", "en_only"))
	assert.False(t, bundle.Has("de", "hello"))
}

func TestLocalesAndFallback(t *testing.T) {
	bundle := newBundle(t)

	assert.Equal(t, []string{"en", "fr"}, bundle.Locales())
	assert.Equal(t, "en", bundle.Fallback())

	lang, ok := bundle.Language("fr")
	require.True(t, ok)
	assert.Equal(t, "French", lang.Name())

	_, ok = bundle.Language("de")
	assert.False(t, ok)
}

func TestExportJSON(t *testing.T) {
	bundle := newBundle(t)

	out, err := bundle.ExportJSON("fr")
	require.NoError(t, err)

	var flat map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &flat))
	assert.Equal(t, "Bonjour, {name}!", flat["hello"])
	assert.Equal(t, "{count} éléments", flat["items.other"])

	_, err = bundle.ExportJSON("de")
	var unknown *i18n.ErrUnknownLocale
	assert.ErrorAs(t, err, &unknown)
}

func TestNewFromAdapter(t *testing.T) {
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"hello": "Hello", "nested": map[string]any{"key": "value"}},
		"uk": {"hello": "Привіт"},
	}}

	bundle, err := i18n.NewFromAdapter(context.Background(), adapter, "en")
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "uk"}, bundle.Locales())
	assert.Equal(t, "Привіт", bundle.T("uk", "hello", nil))
	assert.True(t, bundle.Has("en", "nested.key"))
}

func TestNewFromAdapterNil(t *testing.T) {
	_, err := i18n.NewFromAdapter(context.Background(), nil, "en")
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)
}

func TestNewFromAdapterDelimiter(t *testing.T) {
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"nested": map[string]any{"key": "value"}},
	}}

	bundle, err := i18n.NewFromAdapter(context.Background(), adapter, "en", i18n.WithDelimiter(":"))
	require.NoError(t, err)
	assert.True(t, bundle.Has("en", "nested:key"))
	assert.False(t, bundle.Has("en", "nested.key"))
}
