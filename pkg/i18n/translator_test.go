package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"common": map[string]any{
				"no-user-for-email": "There's no account for this email.",
				"greeting":          "Hello, %{name}!",
			},
		},
		"es": {
			"common": map[string]any{
				"no-user-for-email": "No hay cuenta para este correo.",
			},
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator_NilAdapter(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)
}

func TestT_NestedKeys(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	assert.Equal(t, "There's no account for this email.", tr.T("en", "common.no-user-for-email"))
	assert.Equal(t, "No hay cuenta para este correo.", tr.T("es", "common.no-user-for-email"))
}

func TestT_Substitution(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	assert.Equal(t, "Hello, Ada!", tr.T("en", "common.greeting", "name", "Ada"))
	// Unknown placeholders stay put.
	assert.Equal(t, "Hello, %{name}!", tr.T("en", "common.greeting", "other", "x"))
}

func TestT_FallbackToDefaultLanguage(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	// "fr" has no bundle; the default language ("en") serves the key.
	assert.Equal(t, "There's no account for this email.", tr.T("fr", "common.no-user-for-email"))
}

func TestT_FallbackToKey(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	assert.Equal(t, "common.unknown-key", tr.T("en", "common.unknown-key"))

	strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
	assert.Equal(t, "", strict.T("en", "common.unknown-key"))
}

func TestTd_ExplicitDefault(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	assert.Equal(t, "fallback", tr.Td("en", "common.unknown-key", "fallback"))
	assert.Equal(t, "There's no account for this email.", tr.Td("en", "common.no-user-for-email", "fallback"))
}

func TestSupportedLanguages(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
}

func TestFileAdapter_JSONAndYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "locales.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"en":{"common":{"ok":"OK"}}}`), 0644))

	yamlPath := filepath.Join(dir, "locales.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("en:\n  common:\n    ok: Okay\n"), 0644))

	fromJSON, err := i18n.NewTranslator(context.Background(), i18n.NewFileAdapter(jsonPath))
	require.NoError(t, err)
	assert.Equal(t, "OK", fromJSON.T("en", "common.ok"))

	fromYAML, err := i18n.NewTranslator(context.Background(), i18n.NewFileAdapter(yamlPath))
	require.NoError(t, err)
	assert.Equal(t, "Okay", fromYAML.T("en", "common.ok"))
}

func TestFileAdapter_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), i18n.NewFileAdapter("locales.toml"))
	assert.ErrorIs(t, err, i18n.ErrUnsupportedFileFormat)
}
