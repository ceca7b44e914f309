// Package unifier implements the workspace dependency unification analysis.
package unifier

import (
	"fmt"
	"sort"

	"go.trai.ch/unify/internal/core/domain"
	"go.trai.ch/unify/internal/core/ports"
	"golang.org/x/mod/semver"
)

// Unifier computes the unification plan from a configuration and a scanned
// workspace.
type Unifier struct {
	log ports.Logger
}

// New creates a new Unifier with the given logger.
func New(log ports.Logger) *Unifier {
	return &Unifier{log: log}
}

// observation is a single member's requirement on a third-party module.
type observation struct {
	member  domain.InternedString
	version string
	source  domain.Source
}

// Unify runs the analysis. Exclusion entries that match nothing are no-ops
// reported as warnings; they never fail the run.
func (u *Unifier) Unify(cfg *domain.Config, ws *domain.Workspace) (*domain.Plan, error) {
	memberPaths := make(map[string]struct{}, len(ws.Members))
	for _, m := range ws.Members {
		if m.Path.String() != "" {
			memberPaths[m.Path.String()] = struct{}{}
		}
	}

	u.warnUnknownMemberExcludes(cfg, memberPaths)

	traversed := u.traversedMembers(cfg, ws)

	plan := &domain.Plan{
		PackageName: cfg.PackageName,
		Skipped:     make(map[string]domain.SkipReason),
	}

	observations := make(map[string][]observation)
	for _, m := range traversed {
		for _, req := range m.Requirements {
			path := req.ModulePath.String()
			if _, internal := memberPaths[path]; internal {
				continue
			}
			if cfg.Excludes.ExcludesModule(path, req.Source) {
				plan.Skipped[path] = domain.SkipExcluded
				continue
			}
			observations[path] = append(observations[path], observation{
				member:  m.Path,
				version: req.Version,
				source:  req.Source,
			})
		}
	}

	u.warnUnusedThirdPartyExcludes(cfg, observations, plan.Skipped)

	minMembers := 1
	if cfg.Resolver == domain.ResolverV2 {
		minMembers = 2
	}

	for path, obs := range observations {
		if len(contributors(obs)) < minMembers {
			plan.Skipped[path] = domain.SkipSingleMember
			continue
		}
		plan.Dependencies = append(plan.Dependencies, unifyModule(cfg, path, obs))
	}

	sort.Slice(plan.Dependencies, func(i, j int) bool {
		return plan.Dependencies[i].ModulePath.String() < plan.Dependencies[j].ModulePath.String()
	})

	return plan, nil
}

// traversedMembers filters out excluded members and the aggregation module
// itself, which must never contribute requirements to its own contents.
func (u *Unifier) traversedMembers(cfg *domain.Config, ws *domain.Workspace) []domain.Member {
	aggregationPath := cfg.PackageName
	if ws.ModulePath != "" {
		aggregationPath = ws.ModulePath + "/" + cfg.PackageName
	}

	traversed := make([]domain.Member, 0, len(ws.Members))
	for _, m := range ws.Members {
		path := m.Path.String()
		if path == "" {
			continue
		}
		if path == aggregationPath || m.Dir.String() == cfg.PackageName {
			continue
		}
		if cfg.Excludes.ExcludesMember(path) {
			continue
		}
		traversed = append(traversed, m)
	}
	return traversed
}

func (u *Unifier) warnUnknownMemberExcludes(cfg *domain.Config, memberPaths map[string]struct{}) {
	for _, name := range cfg.Excludes.WorkspaceMembers {
		if _, ok := memberPaths[name.String()]; !ok {
			u.log.Warn(fmt.Sprintf("excluded workspace member %q is not part of the workspace", name.String()))
		}
	}
}

func (u *Unifier) warnUnusedThirdPartyExcludes(
	cfg *domain.Config,
	observations map[string][]observation,
	skipped map[string]domain.SkipReason,
) {
	for _, tp := range cfg.Excludes.ThirdParty {
		if _, observed := observations[tp.Name]; observed {
			// Pinned entries can coexist with registry observations.
			continue
		}
		if _, matched := skipped[tp.Name]; matched {
			continue
		}
		u.log.Warn(fmt.Sprintf("third-party exclusion %q matches no requirement", tp.Name))
	}
}

func contributors(obs []observation) []domain.InternedString {
	seen := make(map[domain.InternedString]struct{}, len(obs))
	members := make([]domain.InternedString, 0, len(obs))
	for _, o := range obs {
		if _, dup := seen[o.member]; dup {
			continue
		}
		seen[o.member] = struct{}{}
		members = append(members, o.member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].String() < members[j].String() })
	return members
}

func unifyModule(cfg *domain.Config, path string, obs []observation) domain.UnifiedDependency {
	selected := selectVersion(obs)

	dep := domain.UnifiedDependency{
		ModulePath: domain.NewInternedString(path),
		Version:    selected,
		Members:    contributors(obs),
		Platforms:  cfg.Platforms,
	}

	for _, o := range obs {
		if o.version == selected {
			continue
		}
		if dep.Divergent == nil {
			dep.Divergent = make(map[string]string)
		}
		dep.Divergent[o.member.String()] = o.version
	}

	return dep
}

// selectVersion picks the semver maximum across observations, falling back
// to lexical comparison for versions semver cannot order.
func selectVersion(obs []observation) string {
	selected := obs[0].version
	for _, o := range obs[1:] {
		if versionLess(selected, o.version) {
			selected = o.version
		}
	}
	return selected
}

func versionLess(a, b string) bool {
	if semver.IsValid(a) && semver.IsValid(b) {
		return semver.Compare(a, b) < 0
	}
	return a < b
}
