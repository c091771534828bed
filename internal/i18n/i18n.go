// Package i18n resolves UI string keys for the three supported locales.
// The tables are loaded once at init and never mutated afterwards.
package i18n

// DefaultLocale is used when a visitor has not picked a language.
const DefaultLocale = "tr"

var supported = map[string]bool{
	"tr": true,
	"en": true,
	"ar": true,
}

// Supported reports whether the code is one of the allowed locales.
func Supported(code string) bool {
	return supported[code]
}

// Locales returns the allowed locale codes.
func Locales() []string {
	return []string{"tr", "en", "ar"}
}

// Resolve returns the text for key in the given locale, falling back to the
// default locale and finally to the key itself when no table has it.
func Resolve(locale, key string) string {
	table, ok := texts[locale]
	if !ok {
		table = texts[DefaultLocale]
	}
	if text, ok := table[key]; ok {
		return text
	}
	if text, ok := texts[DefaultLocale][key]; ok {
		return text
	}
	return key
}

// Translator returns a resolve function bound to one locale, handy for
// template function maps.
func Translator(locale string) func(string) string {
	return func(key string) string {
		return Resolve(locale, key)
	}
}
