package version

import (
	"errors"
	"strings"
	"testing"
)

func TestIsNewer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{
			name:    "same version",
			current: "1.0.0",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "same version with v prefix on current",
			current: "v1.0.0",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "same version with v prefix on latest",
			current: "1.0.0",
			latest:  "v1.0.0",
			want:    false,
		},
		{
			name:    "same version with v prefix on both",
			current: "v1.0.0",
			latest:  "v1.0.0",
			want:    false,
		},
		{
			name:    "newer version available",
			current: "1.0.0",
			latest:  "1.1.0",
			want:    true,
		},
		{
			name:    "major version bump",
			current: "1.0.0",
			latest:  "2.0.0",
			want:    true,
		},
		{
			name:    "patch version bump",
			current: "1.0.0",
			latest:  "1.0.1",
			want:    true,
		},
		{
			name:    "devel version never outdated",
			current: "devel",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "unknown version never outdated",
			current: "unknown",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "dirty version never outdated",
			current: "1.0.0-dirty",
			latest:  "1.1.0",
			want:    false,
		},
		{
			name:    "empty version never outdated",
			current: "",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "prerelease version never outdated",
			current: "1.0.0-0.abc123",
			latest:  "1.1.0",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNewer(tt.current, tt.latest); got != tt.want {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestParseMajor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"v1.2.3": "1",
		"2.0.0":  "2",
		"devel":  "0",
		"":       "0",
	}
	for in, want := range tests {
		if got := ParseMajor(in); got != want {
			t.Errorf("ParseMajor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCheckCompatibilityDevelopment(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"devel", "unknown", "", "1.0.0-dirty"} {
		if err := CheckCompatibility(v); err != nil {
			t.Errorf("CheckCompatibility(%q) = %v, want nil", v, err)
		}
	}
}

func TestIncompatibleError(t *testing.T) {
	t.Parallel()

	err := &IncompatibleError{ClientVersion: "v1.4.0", ServerVersion: "v2.0.1", MinVersion: "v2.0.0"}
	if !errors.Is(err, ErrIncompatible) {
		t.Error("IncompatibleError does not wrap ErrIncompatible")
	}
	if got := err.Error(); !strings.Contains(got, "v1.4.0") || !strings.Contains(got, "v2.0.0") {
		t.Errorf("Error() = %q, want both versions", got)
	}
}
