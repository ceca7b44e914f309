package domain

import "time"

// MemberState records the fingerprint of a member's manifest as of the last
// successful generation. Generate uses it to skip recomputation when nothing
// changed.
type MemberState struct {
	// Name is the member's module path.
	Name string `yaml:"name"`

	// Fingerprint is the xxhash of the member's manifest, in %016x form.
	Fingerprint string `yaml:"fingerprint,omitempty"`

	// UpdatedAt is when the fingerprint was recorded.
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}
