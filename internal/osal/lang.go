package osal

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

var arabic = language.MustParseBase("ar")

// SystemLanguage returns "ar" when the OS user language is Arabic and
// "en" otherwise. The locale environment variables are consulted in the
// order LANGUAGE, LANG, LC_ALL; the first Arabic tag wins.
func SystemLanguage() string {
	for _, key := range []string{"LANGUAGE", "LANG", "LC_ALL"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		// LANGUAGE may hold a colon-separated priority list; the others
		// may carry an ".UTF-8" suffix.
		for _, entry := range strings.Split(v, ":") {
			entry, _, _ = strings.Cut(entry, ".")
			entry = strings.ReplaceAll(entry, "_", "-")
			tag, err := language.Parse(entry)
			if err != nil {
				continue
			}
			if base, _ := tag.Base(); base == arabic {
				return "ar"
			}
		}
	}
	return "en"
}
