package i18n

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TranslationAdapter defines how translations are loaded.
// The outer map is keyed by language code, the inner maps may nest
// arbitrarily (map[string]any values) to support dotted keys.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// Parser converts raw file content into the translations structure.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	SupportsFileExtension(ext string) bool
}

// MapAdapter serves translations from an in-memory map, mostly for tests and
// embedded default bundles.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single file using the parser that
// matches the file extension.
type FileAdapter struct {
	parsers []Parser
	path    string
}

// NewFileAdapter creates a FileAdapter for the given path. JSON and YAML
// files are supported out of the box.
func NewFileAdapter(path string, parsers ...Parser) *FileAdapter {
	if len(parsers) == 0 {
		parsers = []Parser{NewJSONParser(), NewYAMLParser()}
	}
	return &FileAdapter{parsers: parsers, path: path}
}

// Load implements the TranslationAdapter interface.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.path == "" {
		return nil, errors.New("i18n: file path is empty")
	}

	ext := filepath.Ext(a.path)
	var parser Parser
	for _, p := range a.parsers {
		if p.SupportsFileExtension(ext) {
			parser = p
			break
		}
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileFormat, ext)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("i18n: failed to read %s: %w", a.path, err)
	}

	return parser.Parse(ctx, content)
}
