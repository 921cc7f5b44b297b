package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatterkit/i18n"
)

func TestNormalize(t *testing.T) {
	got, ok := i18n.Normalize("EN-us")
	require.True(t, ok)
	assert.Equal(t, "en-us", got)

	got, ok = i18n.Normalize("fr")
	require.True(t, ok)
	assert.Equal(t, "fr", got)

	_, ok = i18n.Normalize("not a tag!")
	assert.False(t, ok)

	_, ok = i18n.Normalize("")
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	supported := []string{"en", "fr", "uk"}

	assert.Equal(t, "fr", i18n.Match([]string{"fr"}, supported, "en"))
	assert.Equal(t, "en", i18n.Match([]string{"en-GB"}, supported, "fr"))
	assert.Equal(t, "en", i18n.Match(nil, supported, "en"))
	assert.Equal(t, "en", i18n.Match([]string{"fr"}, nil, "en"))
}

func TestParseAcceptLanguage(t *testing.T) {
	supported := []string{"en", "fr", "de"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"exact match", "fr", "fr"},
		{"quality ordering", "de;q=0.8,fr;q=0.9", "fr"},
		{"base language fallback", "fr-CA,es", "fr"},
		{"exact beats base", "fr-CA,de;q=0.5", "de"},
		{"no match", "ja,ko", "en"},
		{"empty header", "", "en"},
		{"malformed quality", "fr;q=broken", "fr"},
		{"case insensitive", "FR", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}
}

func TestParseAcceptLanguageNoSupported(t *testing.T) {
	assert.Equal(t, "en", i18n.ParseAcceptLanguage("fr", nil, "en"))
}
