// Package notices carries typed diagnostics with source locations.
// Notices are collected rather than thrown; errors are reserved for
// unrecoverable conditions.
package notices

import (
	"fmt"
	"strings"

	"alusus/internal/l18n"
	"alusus/internal/source"
)

// Notice is an immutable diagnostic record. The code doubles as the
// lookup key into the locale dictionary; when no entry exists the raw
// code is used as the description.
type Notice struct {
	code     string
	severity Severity
	loc      source.Location
	params   []any
}

func New(code string, severity Severity, loc source.Location, params ...any) *Notice {
	return &Notice{code: code, severity: severity, loc: loc, params: params}
}

func (n *Notice) Code() string { return n.code }

func (n *Notice) Severity() Severity { return n.severity }

func (n *Notice) Location() source.Location { return n.loc }

func (n *Notice) Params() []any { return append([]any(nil), n.params...) }

// Description produces the localized text for this notice. Templates with
// printf verbs are filled from the notice parameters; plain templates get
// the parameters appended.
func (n *Notice) Description() string {
	text := l18n.Get(n.code)
	if len(n.params) == 0 {
		return text
	}
	if strings.Contains(text, "%") {
		return fmt.Sprintf(text, n.params...)
	}
	parts := make([]string, len(n.params))
	for i, p := range n.params {
		parts[i] = fmt.Sprint(p)
	}
	return text + ": " + strings.Join(parts, ", ")
}

func (n *Notice) String() string {
	return fmt.Sprintf("%s: %s %s: %s", n.loc, n.severity, n.code, n.Description())
}
