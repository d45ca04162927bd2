// Package l18ndata provides the embedded default notice dictionaries
// used when no Notices_L18n directory ships next to the binary.
package l18ndata

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.txt
var localesFS embed.FS

// LocalesFS exposes the embedded locale files, one <locale>.txt each.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}
