package osal

import (
	"runtime"
	"strings"
)

// PathListSeparator is ";" on Windows and ":" elsewhere.
func PathListSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

// ParsePathVariable splits a PATH-style value into its entries. On POSIX
// the separator is ":" and cannot be escaped. On Windows the separator is
// ";" and an entry may be wrapped in double quotes to escape embedded
// semicolons; the quotes are stripped. Empty entries are dropped.
func ParsePathVariable(s string) []string {
	if runtime.GOOS == "windows" {
		return parsePathVariableQuoted(s)
	}
	var paths []string
	for _, part := range strings.Split(s, ":") {
		if part != "" {
			paths = append(paths, part)
		}
	}
	return paths
}

func parsePathVariableQuoted(s string) []string {
	var paths []string
	var current strings.Builder
	inQuotes := false
	for _, ch := range s {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ';' && !inQuotes:
			if current.Len() > 0 {
				paths = append(paths, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		paths = append(paths, current.String())
	}
	return paths
}

// JoinPathVariable is the inverse of ParsePathVariable for entries that
// contain no separator and, on Windows, no unbalanced quote. Windows
// entries containing ";" are wrapped in double quotes.
func JoinPathVariable(paths []string) string {
	if runtime.GOOS != "windows" {
		return strings.Join(paths, ":")
	}
	quoted := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.Contains(p, ";") {
			p = `"` + p + `"`
		}
		quoted = append(quoted, p)
	}
	return strings.Join(quoted, ";")
}
