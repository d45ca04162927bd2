// Package diagfmt renders notices and AST dumps for humans.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"alusus/internal/notices"
)

// PrettyOpts controls notice rendering.
type PrettyOpts struct {
	Color bool
	// MaxWidth truncates the description; 0 means no limit.
	MaxWidth int
}

var severityStyles = map[notices.Severity]lipgloss.Style{
	notices.SevFatal:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	notices.SevError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	notices.SevWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	notices.SevMinor:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	notices.SevInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

// PrintNotice writes one notice as
// <path>:<line>:<col>: <SEVERITY> <CODE>: <description>.
func PrintNotice(w io.Writer, n *notices.Notice, opts PrettyOpts) {
	sev := n.Severity().String()
	if opts.Color {
		if style, ok := severityStyles[n.Severity()]; ok {
			sev = style.Render(sev)
		}
	}
	desc := n.Description()
	if opts.MaxWidth > 0 && runewidth.StringWidth(desc) > opts.MaxWidth {
		desc = runewidth.Truncate(desc, opts.MaxWidth, "...")
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", n.Location(), sev, n.Code(), desc)
}

// NoticePrinter returns a slot that renders every emitted notice onto w.
func NoticePrinter(w io.Writer, opts PrettyOpts) notices.Slot {
	return func(n *notices.Notice) {
		PrintNotice(w, n, opts)
	}
}
