package money

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestDetectLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{"empty environment", map[string]string{}, "en-US"},
		{"LANG with codeset", map[string]string{"LANG": "de_DE.UTF-8"}, "de-DE"},
		{"LC_ALL wins over LANG", map[string]string{"LC_ALL": "fr_FR.UTF-8", "LANG": "de_DE.UTF-8"}, "fr-FR"},
		{"LC_MONETARY wins over LANG", map[string]string{"LC_MONETARY": "en_GB", "LANG": "de_DE"}, "en-GB"},
		{"modifier is dropped", map[string]string{"LANG": "de_DE@euro"}, "de-DE"},
		{"C locale", map[string]string{"LANG": "C.UTF-8"}, "en-US"},
		{"POSIX locale", map[string]string{"LC_ALL": "POSIX"}, "en-US"},
		{"garbage", map[string]string{"LANG": "!!"}, "en-US"},
		{"bcp47 already", map[string]string{"LANG": "ja-JP"}, "ja-JP"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, DetectLocale(envFrom(tt.env)).String())
		})
	}
}

func TestDetectLocaleWithoutLookup(t *testing.T) {
	t.Parallel()

	require.Equal(t, language.AmericanEnglish, DetectLocale(nil))
}
