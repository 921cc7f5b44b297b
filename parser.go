package i18n

import (
	"context"
	"strings"
)

// Parser decodes one translation document from raw file content.
type Parser interface {
	// Parse processes the given content and returns a nested document. Keys
	// may nest arbitrarily; the resolver flattens them on registration.
	Parse(ctx context.Context, content []byte) (map[string]any, error)

	// SupportsExt checks if the parser handles a given file extension.
	// The extension may or may not include a leading dot.
	SupportsExt(ext string) bool
}

// ParserForFile returns a parser based on the file extension, or nil when the
// format is not recognized.
func ParserForFile(filename string) Parser {
	switch strings.ToLower(fileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
