package i18n

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML documents.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes YAML content into a nested translation document.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return doc, nil
}

// SupportsExt checks if the parser supports the given file extension.
func (p *YAMLParser) SupportsExt(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
