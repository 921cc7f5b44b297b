package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatterkit/i18n"
)

func TestJSONParser(t *testing.T) {
	parser := i18n.NewJSONParser()

	doc, err := parser.Parse(context.Background(), []byte(`{"hello": "Hello", "nested": {"key": "value"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Hello", doc["hello"])

	nested, ok := doc["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "value", nested["key"])
}

func TestJSONParserInvalid(t *testing.T) {
	parser := i18n.NewJSONParser()

	_, err := parser.Parse(context.Background(), []byte(`{not json`))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
}

func TestYAMLParser(t *testing.T) {
	parser := i18n.NewYAMLParser()

	doc, err := parser.Parse(context.Background(), []byte("hello: Hello\nnested:\n  key: value\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", doc["hello"])

	nested, ok := doc["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "value", nested["key"])
}

func TestYAMLParserInvalid(t *testing.T) {
	parser := i18n.NewYAMLParser()

	_, err := parser.Parse(context.Background(), []byte("key: [unclosed"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
}

func TestParserCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := i18n.NewJSONParser().Parse(ctx, []byte(`{}`))
	assert.ErrorIs(t, err, i18n.ErrParsingCancelled)

	_, err = i18n.NewYAMLParser().Parse(ctx, []byte(`{}`))
	assert.ErrorIs(t, err, i18n.ErrParsingCancelled)
}

func TestSupportsExt(t *testing.T) {
	assert.True(t, i18n.NewJSONParser().SupportsExt("json"))
	assert.True(t, i18n.NewJSONParser().SupportsExt(".JSON"))
	assert.False(t, i18n.NewJSONParser().SupportsExt("yaml"))

	assert.True(t, i18n.NewYAMLParser().SupportsExt("yaml"))
	assert.True(t, i18n.NewYAMLParser().SupportsExt(".yml"))
	assert.False(t, i18n.NewYAMLParser().SupportsExt("json"))
}

func TestParserForFile(t *testing.T) {
	assert.IsType(t, &i18n.JSONParser{}, i18n.ParserForFile("en.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.ParserForFile("en.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.ParserForFile("en.YML"))
	assert.Nil(t, i18n.ParserForFile("en.toml"))
	assert.Nil(t, i18n.ParserForFile("noextension"))
}
