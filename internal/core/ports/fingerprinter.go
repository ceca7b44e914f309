package ports

import "go.trai.ch/unify/internal/core/domain"

// Fingerprinter computes stable content fingerprints used to decide whether
// a previously generated aggregation module is still current.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// ConfigFingerprint fingerprints the parsed configuration record.
	ConfigFingerprint(cfg *domain.Config) string

	// MemberFingerprint fingerprints a member's requirements.
	MemberFingerprint(m *domain.Member) string
}
