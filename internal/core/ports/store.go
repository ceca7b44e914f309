package ports

import "go.trai.ch/unify/internal/core/domain"

// StateStore persists member fingerprints between invocations.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get retrieves the recorded state for a member module path.
	// Returns nil when the member has no recorded state.
	Get(name string) (*domain.MemberState, error)

	// Put stores the state for a member.
	Put(state domain.MemberState) error
}
