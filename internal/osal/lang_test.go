package osal

import "testing"

func TestSystemLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language string
		lang     string
		want     string
	}{
		{"arabic LANG", "", "ar_SA.UTF-8", "ar"},
		{"arabic LANGUAGE wins", "ar", "en_US.UTF-8", "ar"},
		{"english", "", "en_US.UTF-8", "en"},
		{"unset", "", "", "en"},
		{"priority list", "ar:en", "", "ar"},
		{"garbage", "", "not-a-locale", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LANGUAGE", tt.language)
			t.Setenv("LANG", tt.lang)
			t.Setenv("LC_ALL", "")
			if got := SystemLanguage(); got != tt.want {
				t.Errorf("SystemLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTempDirectoryOrder(t *testing.T) {
	t.Setenv("TMPDIR", "/first")
	t.Setenv("TMP", "/second")
	t.Setenv("TEMP", "/third")
	t.Setenv("TEMPDIR", "/fourth")
	if got := TempDirectory(); got != "/first" {
		t.Errorf("TempDirectory() = %q, want /first", got)
	}
	t.Setenv("TMPDIR", "")
	if got := TempDirectory(); got != "/second" {
		t.Errorf("TempDirectory() = %q, want /second", got)
	}
}
