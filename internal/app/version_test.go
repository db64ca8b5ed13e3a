package app

import (
	"strings"
	"testing"
)

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	got := BuildVersion()
	if !strings.HasPrefix(got, Version+" (commit: ") {
		t.Errorf("BuildVersion() = %q, want prefix %q", got, Version+" (commit: ")
	}
}

func TestShortRevision(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"0123456789abcdef0123": "0123456789ab",
		"abc":                  "abc",
		"":                     "",
	}
	for in, want := range tests {
		if got := shortRevision(in); got != want {
			t.Errorf("shortRevision(%q) = %q, want %q", in, got, want)
		}
	}
}
