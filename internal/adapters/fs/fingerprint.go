// Package fs provides filesystem-adjacent adapters: content fingerprinting
// of the configuration and member manifests.
package fs

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/unify/internal/core/domain"
	"go.trai.ch/unify/internal/core/ports"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes xxhash fingerprints over domain records.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// ConfigFingerprint hashes every field of the configuration record.
func (f *Fingerprinter) ConfigFingerprint(cfg *domain.Config) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(cfg.PackageName)
	_, _ = hasher.Write([]byte{0}) // Separator
	_, _ = hasher.WriteString(cfg.Resolver.String())
	_, _ = hasher.Write([]byte{0})
	if cfg.ExactVersions {
		_, _ = hasher.Write([]byte{1})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, p := range cfg.Platforms {
		_, _ = hasher.WriteString(p.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	hashSorted(hasher, memberNames(cfg.Excludes.WorkspaceMembers))
	for _, tp := range sortedThirdParty(cfg.Excludes.ThirdParty) {
		_, _ = hasher.WriteString(tp.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(tp.Git)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(tp.Rev)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// MemberFingerprint hashes a member's identity and direct requirements.
func (f *Fingerprinter) MemberFingerprint(m *domain.Member) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(m.Path.String())
	_, _ = hasher.Write([]byte{0})

	reqs := make([]domain.Requirement, len(m.Requirements))
	copy(reqs, m.Requirements)
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].ModulePath.String() < reqs[j].ModulePath.String()
	})

	for _, r := range reqs {
		_, _ = hasher.WriteString(r.ModulePath.String())
		_, _ = hasher.Write([]byte{'@'})
		_, _ = hasher.WriteString(r.Version)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(r.Source.Git)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(r.Source.Rev)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func hashSorted(hasher *xxhash.Digest, values []string) {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	for _, v := range sorted {
		_, _ = hasher.WriteString(v)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

func memberNames(members []domain.InternedString) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.String()
	}
	return names
}

func sortedThirdParty(entries []domain.ThirdPartyExclude) []domain.ThirdPartyExclude {
	sorted := make([]domain.ThirdPartyExclude, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}
