package money

import (
	"strings"

	"golang.org/x/text/language"
)

// localeVars are consulted in order; the first non-empty one wins.
var localeVars = []string{"LC_ALL", "LC_MONETARY", "LANG"}

// DetectLocale derives the user's locale from POSIX environment variables.
// Unset, "C", "POSIX" and unparsable values resolve to American English.
func DetectLocale(getenv func(string) string) language.Tag {
	if getenv == nil {
		return language.AmericanEnglish
	}

	for _, key := range localeVars {
		value := strings.TrimSpace(getenv(key))
		if value == "" {
			continue
		}
		return ParseLocale(value)
	}

	return language.AmericanEnglish
}

// ParseLocale accepts BCP 47 tags as well as POSIX names such as
// "de_DE.UTF-8@euro".
func ParseLocale(value string) language.Tag {
	name := strings.TrimSpace(value)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.AmericanEnglish
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
