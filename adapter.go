package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Adapter defines how translations are loaded: locale code to nested document.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the
// translation source.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the Adapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single file whose top level maps locale codes to
// documents, e.g.:
//
//	en:
//	  greeting: "Hello, {name}!"
//	de:
//	  greeting: "Hallo, {name}!"
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, filePath string) *FileAdapter {
	if parser == nil || filePath == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: filePath}
}

// Load implements the Adapter interface.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadSource, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: file %q is empty", ErrFailedToReadSource, a.path)
	}

	doc, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseSource, err)
	}

	result := make(map[string]map[string]any, len(doc))
	for locale, val := range doc {
		sub, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q in %q: expected map, got %T", ErrFailedToParseSource, locale, a.path, val)
		}
		result[locale] = sub
	}
	return result, nil
}

// FSAdapter walks one directory of an io/fs.FS (embed.FS and os.DirFS both
// qualify) and treats every supported file as one locale, taking the locale
// code from the file basename: "en.yaml" registers under "en". Multiple files
// for the same locale merge, later entries overwriting earlier ones.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance. Pass "." as dir to read the
// root of the filesystem. Returns nil if parser or fsys is nil.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the Adapter interface.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadSource, err)
	}

	result := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if ext == "" || !a.parser.SupportsExt(ext) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, name)
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadSource, err)
		}

		doc, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrFailedToParseSource, filePath, err)
		}

		locale := strings.TrimSuffix(name, ext)
		mergeDocs(result, map[string]map[string]any{locale: doc})
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no translation files found in %q", ErrFailedToReadSource, a.dir)
	}
	return result, nil
}
