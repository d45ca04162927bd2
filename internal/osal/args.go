package osal

import "golang.org/x/text/unicode/norm"

// NormalizeArgs replaces argv with an NFC-normalized UTF-8 copy. The copy
// lives for the whole process; the native argv is left untouched. On
// POSIX the arguments are already UTF-8, so normalization is the only
// transformation applied.
func NormalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = norm.NFC.String(a)
	}
	return out
}
