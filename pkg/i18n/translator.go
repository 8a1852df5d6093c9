package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/signupkit/pkg/logger"
)

// DefaultLanguage is used when no language is specified.
const DefaultLanguage = "en"

// Translator resolves message keys to user-facing strings.
// Translations are loaded once from an adapter at construction time.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
	mu            sync.RWMutex
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used by T when the requested one has
// no translations.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing translation yields the key
// itself (true, the default) or an empty string.
func WithFallbackToKey(enabled bool) Option {
	return func(t *Translator) { t.fallbackToKey = enabled }
}

// WithLogger sets a logger for missing-translation diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(t *Translator) {
		if log != nil {
			t.logger = log
		}
	}
}

// NewTranslator creates a Translator from the given adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if m == nil {
			return nil, fmt.Errorf("%w: nil translations for language %q", ErrInvalidTranslations, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// SupportedLanguages returns the language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// T translates a key for the given language. Additional arguments are
// key-value pairs substituted into %{name} placeholders:
//
//	t.T("en", "common.no-user-for-email", "email", "a@x.com")
//
// Dot-separated keys traverse nested maps, so "common.no-user-for-email"
// resolves m["common"]["no-user-for-email"]. When the language or key is
// unknown the default language is tried, then the key itself is returned
// (unless fallback is disabled).
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if msg, ok := t.lookup(lang, key); ok {
		return substitute(msg, args)
	}
	if lang != t.defaultLang {
		if msg, ok := t.lookup(t.defaultLang, key); ok {
			return substitute(msg, args)
		}
	}

	t.logger.Warn("translation not found", "lang", lang, "key", key)
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td translates a key with an explicit default used when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if msg, ok := t.lookup(lang, key); ok {
		return substitute(msg, args)
	}
	return substitute(defaultValue, args)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	var current any = map[string]any(langMap)
	for part := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = m[part]
		if !ok {
			return "", false
		}
	}

	msg, ok := current.(string)
	return msg, ok
}

// paramRegex finds named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders using args as key-value pairs.
// An odd trailing argument is ignored; unknown placeholders are left as-is.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
