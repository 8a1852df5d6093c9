package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSONParser implements the Parser interface for JSON translation files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON content and returns a map of translations.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	return toTranslations(data), nil
}

// SupportsFileExtension reports whether the parser handles the extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser implements the Parser interface for YAML translation files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns a map of translations.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	return toTranslations(data), nil
}

// SupportsFileExtension reports whether the parser handles the extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// toTranslations narrows a decoded document into the per-language structure,
// skipping top-level entries that are not maps.
func toTranslations(data map[string]any) map[string]map[string]any {
	result := make(map[string]map[string]any, len(data))
	for lang, translations := range data {
		if m, ok := translations.(map[string]any); ok {
			result[lang] = m
		}
	}
	return result
}
