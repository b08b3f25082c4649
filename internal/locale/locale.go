// Package locale resolves the storefront display language.
package locale

import "golang.org/x/text/language"

// Supported lists the storefront languages; the first entry is the default.
var Supported = []language.Tag{language.English, language.Urdu}

var matcher = language.NewMatcher(Supported)

// Resolve picks the best supported language for the given preferences,
// typically a ?lang= value followed by the Accept-Language header.
func Resolve(prefs ...string) language.Tag {
	_, idx, _ := matcher.Match(parse(prefs)...)
	return Supported[idx]
}

// IsUrdu reports whether tag resolves to Urdu.
func IsUrdu(tag language.Tag) bool {
	base, _ := tag.Base()
	urdu, _ := language.Urdu.Base()
	return base == urdu
}

func parse(prefs []string) []language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	return tags
}
