package osal

import "runtime"

// ShlibExt returns the host's shared-library file extension including the
// leading dot.
func ShlibExt() string {
	switch runtime.GOOS {
	case "windows":
		return ".dll"
	case "darwin":
		return ".dylib"
	default:
		return ".so"
	}
}

// ConstructShlibNames produces the candidate filenames for a logical
// library name, in probe order. Debug variants carry a ".dbg" infix and
// are included only in debug builds. The result contains no duplicates.
func ConstructShlibNames(base string) []string {
	var candidates []string
	switch runtime.GOOS {
	case "windows":
		if debugBuild {
			candidates = append(candidates, "lib"+base+".dbg.dll", base+".dbg.dll")
		}
		candidates = append(candidates, "lib"+base+".dll", base+".dll")
	case "darwin":
		if debugBuild {
			candidates = append(candidates, "lib"+base+".dbg.dylib")
		}
		candidates = append(candidates, "lib"+base+".dylib")
	default:
		if debugBuild {
			candidates = append(candidates, "lib"+base+".dbg.so")
		}
		candidates = append(candidates, "lib"+base+".so")
	}
	seen := make(map[string]struct{}, len(candidates))
	names := candidates[:0]
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		names = append(names, c)
	}
	return names
}
