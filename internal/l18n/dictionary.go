// Package l18n provides the process-global locale dictionary used to
// produce human-readable notice descriptions.
package l18n

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Dictionary maps keys to localized text for one active locale. Lookups
// are fail-soft: a missing entry yields the key itself.
type Dictionary struct {
	mu      sync.RWMutex
	locale  string
	entries map[string]string
}

var singleton = &Dictionary{entries: map[string]string{}}

// Default returns the process-global dictionary.
func Default() *Dictionary { return singleton }

// Get looks a key up in the process-global dictionary.
func Get(key string) string { return singleton.Get(key) }

// Initialize clears the dictionary and loads <dir>/<locale>.txt. Each
// line is one `key:value` entry; a literal `\n` inside the value decodes
// to a newline. A missing or unreadable file leaves the dictionary empty,
// which degrades lookups to raw keys.
func (d *Dictionary) Initialize(locale, dir string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locale = locale
	d.entries = map[string]string{}

	f, err := os.Open(filepath.Join(dir, locale+".txt"))
	if err != nil {
		return
	}
	defer f.Close()
	d.load(f)
}

// InitializeFS is Initialize over a file system, used for the embedded
// fallback dictionaries.
func (d *Dictionary) InitializeFS(locale string, fsys fs.FS) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locale = locale
	d.entries = map[string]string{}

	f, err := fsys.Open(locale + ".txt")
	if err != nil {
		return
	}
	defer f.Close()
	d.load(f)
}

func (d *Dictionary) load(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		d.entries[key] = strings.ReplaceAll(value, `\n`, "\n")
	}
}

// AddEntry inserts a key when absent. A present key is overwritten only
// when the entry's locale matches the active one, so a library can ship
// fallback text without clobbering the user's locale.
func (d *Dictionary) AddEntry(locale, key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.entries[key]; !ok || locale == d.locale {
		d.entries[key] = value
	}
}

// Get returns the localized text for key, or key itself when absent.
func (d *Dictionary) Get(key string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if text, ok := d.entries[key]; ok {
		return text
	}
	return key
}

// Locale returns the active locale, or "" before initialization.
func (d *Dictionary) Locale() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.locale
}
