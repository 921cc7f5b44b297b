package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements the Parser interface for JSON documents.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes JSON content into a nested translation document.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return doc, nil
}

// SupportsExt checks if the parser supports the given file extension.
func (p *JSONParser) SupportsExt(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
