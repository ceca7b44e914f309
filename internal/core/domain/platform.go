package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PlatformTriple identifies a target operating system, architecture, and ABI
// combination in the conventional arch-vendor-os[-abi] form, e.g.
// "x86_64-unknown-linux-gnu" or "aarch64-apple-darwin".
type PlatformTriple struct {
	Arch   string
	Vendor string
	OS     string
	ABI    string
}

// ParsePlatformTriple parses a platform triple string. At least three
// non-empty segments are required; a fourth segment, when present, is the ABI.
func ParsePlatformTriple(s string) (PlatformTriple, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 3 || len(parts) > 4 {
		return PlatformTriple{}, zerr.With(ErrInvalidPlatformTriple, "triple", s)
	}
	for _, p := range parts {
		if p == "" {
			return PlatformTriple{}, zerr.With(ErrInvalidPlatformTriple, "triple", s)
		}
	}

	t := PlatformTriple{
		Arch:   parts[0],
		Vendor: parts[1],
		OS:     parts[2],
	}
	if len(parts) == 4 {
		t.ABI = parts[3]
	}
	return t, nil
}

// String returns the canonical triple string.
func (t PlatformTriple) String() string {
	s := t.Arch + "-" + t.Vendor + "-" + t.OS
	if t.ABI != "" {
		s += "-" + t.ABI
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (t PlatformTriple) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PlatformTriple) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatformTriple(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
