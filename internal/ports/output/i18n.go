package output

// T exposes the i18n contract for user-facing messages.
type T interface {
	// T renders the message identified by key ("id" or "id.attribute") for
	// the given locale. data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}

// Localizations adds exact lookups used to localize slash commands.
type Localizations interface {
	T
	// Lookup returns key in exactly locale, without falling back.
	Lookup(locale, key string) (string, bool)
	// Locales returns every available locale, base first.
	Locales() []string
	// Match returns the available locale closest to a client locale.
	Match(requested string) string
}
