package domain

// SkipReason explains why a third-party module observed during traversal was
// left out of the unification plan.
type SkipReason string

const (
	// SkipExcluded marks a module matched by a traversal-excludes entry.
	SkipExcluded SkipReason = "excluded"
	// SkipSingleMember marks a module required by only one traversed member
	// under resolver version 2.
	SkipSingleMember SkipReason = "single-member"
)

// UnifiedDependency is one entry of the unification plan: an external module
// pinned to the version selected across all contributing members.
type UnifiedDependency struct {
	// ModulePath is the unified module's path.
	ModulePath InternedString

	// Version is the selected version, the semver maximum across contributors.
	Version string

	// Members lists the traversed members that require the module, sorted.
	Members []InternedString

	// Divergent maps member module paths to the version they require when it
	// differs from the unified selection. Only reported by check when
	// exact-versions is set.
	Divergent map[string]string

	// Platforms lists the configured triples the entry applies to. Empty
	// means the entry is platform-independent.
	Platforms []PlatformTriple
}

// Plan is the computed result of the unification analysis. It is derived
// state: recomputing it from the same configuration and workspace always
// yields the same plan, in the same order.
type Plan struct {
	// PackageName is the aggregation module directory name.
	PackageName string

	// Dependencies are the unified entries, sorted by module path.
	Dependencies []UnifiedDependency

	// Skipped maps observed-but-rejected module paths to the reason.
	Skipped map[string]SkipReason
}

// Find returns the unified entry for the given module path, or nil.
func (p *Plan) Find(modulePath string) *UnifiedDependency {
	for i := range p.Dependencies {
		if p.Dependencies[i].ModulePath.String() == modulePath {
			return &p.Dependencies[i]
		}
	}
	return nil
}
