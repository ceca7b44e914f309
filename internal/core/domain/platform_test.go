package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/unify/internal/core/domain"
)

func TestParsePlatformTriple(t *testing.T) {
	tests := []struct {
		in   string
		want domain.PlatformTriple
	}{
		{
			in:   "x86_64-unknown-linux-gnu",
			want: domain.PlatformTriple{Arch: "x86_64", Vendor: "unknown", OS: "linux", ABI: "gnu"},
		},
		{
			in:   "aarch64-apple-darwin",
			want: domain.PlatformTriple{Arch: "aarch64", Vendor: "apple", OS: "darwin"},
		},
		{
			in:   "x86_64-pc-windows-msvc",
			want: domain.PlatformTriple{Arch: "x86_64", Vendor: "pc", OS: "windows", ABI: "msvc"},
		},
	}

	for _, tt := range tests {
		got, err := domain.ParsePlatformTriple(tt.in)
		if err != nil {
			t.Fatalf("ParsePlatformTriple(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePlatformTriple(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want round-trip of %q", got.String(), tt.in)
		}
	}
}

func TestParsePlatformTriple_Invalid(t *testing.T) {
	for _, bad := range []string{"", "linux", "x86_64-linux", "a--b-c", "a-b-c-d-e"} {
		if _, err := domain.ParsePlatformTriple(bad); !errors.Is(err, domain.ErrInvalidPlatformTriple) {
			t.Errorf("ParsePlatformTriple(%q): expected ErrInvalidPlatformTriple, got %v", bad, err)
		}
	}
}
