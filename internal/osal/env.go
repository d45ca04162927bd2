package osal

import "os"

// The process environment on every supported platform is already exposed
// to Go as UTF-8, so these are thin views kept for symmetry with the rest
// of the platform layer.

func Getenv(key string) string { return os.Getenv(key) }

func LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func Setenv(key, value string) error { return os.Setenv(key, value) }

func Unsetenv(key string) error { return os.Unsetenv(key) }

// WorkingDirectory returns the process CWD as a UTF-8 Path.
func WorkingDirectory() (Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Path{}, err
	}
	return NewPath(wd), nil
}

// TempDirectory consults TMPDIR, TMP, TEMP and TEMPDIR in that order and
// falls back to the OS default.
func TempDirectory() string {
	for _, key := range []string{"TMPDIR", "TMP", "TEMP", "TEMPDIR"} {
		if dir, ok := os.LookupEnv(key); ok && dir != "" {
			return dir
		}
	}
	return os.TempDir()
}
