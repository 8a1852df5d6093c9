// Package i18n resolves message keys to localized user-facing strings.
//
// The signup service uses it for the few errors that are shown directly to
// end users, such as "common.no-user-for-email" when a verification email is
// requested for an unknown address. Translations load once at startup from an
// adapter (in-memory map, or a JSON/YAML file) and lookups are cheap map
// traversals, so a Translator is safe to share across requests.
//
//	translator, err := i18n.NewTranslator(ctx, i18n.NewFileAdapter("locales.yml"))
//	if err != nil {
//	    // handle error
//	}
//	msg := translator.T("es", "common.no-user-for-email")
//
// Placeholders use the %{name} form and are substituted from trailing
// key-value pairs:
//
//	translator.T("en", "common.greeting", "name", "Ada")
//
// Missing keys fall back to the default language, then to the key itself so a
// forgotten translation degrades visibly instead of blanking the message.
package i18n
