// Package domain contains the core domain models for workspace dependency
// unification: the parsed configuration contract, scanned workspace members,
// and the unification plan derived from them.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ConfigFileName is the canonical configuration file name.
const ConfigFileName = "hakari.toml"

// ResolverVersion selects the dependency-selection strategy the unifier
// should assume. Only versions 1 and 2 exist.
type ResolverVersion int

const (
	// ResolverV1 admits every third-party requirement of any traversed member.
	ResolverV1 ResolverVersion = 1
	// ResolverV2 admits only modules required by two or more traversed members.
	ResolverV2 ResolverVersion = 2
)

// ParseResolverVersion parses the string form used in the configuration file.
// Any value outside {"1", "2"} is rejected.
func ParseResolverVersion(s string) (ResolverVersion, error) {
	switch s {
	case "1":
		return ResolverV1, nil
	case "2":
		return ResolverV2, nil
	default:
		return 0, zerr.With(ErrUnknownResolver, "resolver", s)
	}
}

// String returns the configuration-file form of the resolver version.
func (v ResolverVersion) String() string {
	switch v {
	case ResolverV1:
		return "1"
	case ResolverV2:
		return "2"
	default:
		return ""
	}
}

// Config is the parsed, immutable configuration record. It is read once per
// invocation and never mutated afterwards.
type Config struct {
	// PackageName is the name of the generated aggregation module
	// (the hakari-package key).
	PackageName string

	// Resolver is the dependency-selection strategy version.
	Resolver ResolverVersion

	// Platforms lists the target platform triples to account for when
	// unioning platform-conditional requirements. Empty means the analysis
	// is platform-independent.
	Platforms []PlatformTriple

	// ExactVersions pins members to the exact unified version: when set,
	// check reports any traversed member whose requirement diverges from
	// the unified pin.
	ExactVersions bool

	// Excludes holds the traversal exclusion lists.
	Excludes TraversalExcludes
}

// ThirdPartyExclude names an external module excluded from the unification
// analysis. A name-only entry excludes the module outright; an entry with
// Git and Rev excludes only the pinned source revision.
type ThirdPartyExclude struct {
	Name string
	Git  string
	Rev  string
}

// Pinned reports whether this exclusion targets a specific source revision
// rather than the module name as a whole.
func (e ThirdPartyExclude) Pinned() bool {
	return e.Git != ""
}

// Source identifies where a member obtains a third-party module when it is
// not the default registry: a git repository at a specific revision.
type Source struct {
	Git string
	Rev string
}

// IsZero reports whether the source is the default registry.
func (s Source) IsZero() bool {
	return s.Git == "" && s.Rev == ""
}

// TraversalExcludes holds the packages the unifier must not traverse into or
// account for.
type TraversalExcludes struct {
	// WorkspaceMembers lists internal members to skip: they are not
	// traversed and are not expected to depend on the aggregation module.
	WorkspaceMembers []InternedString

	// ThirdParty lists external modules excluded from the analysis.
	ThirdParty []ThirdPartyExclude
}

// ExcludesMember reports whether the named workspace member is excluded.
func (t TraversalExcludes) ExcludesMember(name string) bool {
	for _, m := range t.WorkspaceMembers {
		if m.String() == name {
			return true
		}
	}
	return false
}

// ExcludesModule reports whether a third-party module, obtained from the
// given source, is excluded. Name-only entries match the module path alone;
// pinned entries additionally require the source to match the pinned
// repository and revision.
func (t TraversalExcludes) ExcludesModule(path string, src Source) bool {
	for _, e := range t.ThirdParty {
		if e.Name != path {
			continue
		}
		if !e.Pinned() {
			return true
		}
		if src.IsZero() {
			continue
		}
		if e.Git == src.Git && revisionsMatch(e.Rev, src.Rev) {
			return true
		}
	}
	return false
}

// revisionsMatch compares two git revisions, tolerating abbreviation: the
// configured rev may be a prefix of the resolved one or vice versa.
func revisionsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
}
