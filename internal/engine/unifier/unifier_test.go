package unifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unify/internal/core/domain"
	"go.trai.ch/unify/internal/engine/unifier"
)

type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Debug(string)    {}
func (l *recordingLogger) Info(string)     {}
func (l *recordingLogger) Warn(msg string) { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(error)     {}

func member(path string, reqs ...domain.Requirement) domain.Member {
	return domain.Member{
		Path:         domain.NewInternedString(path),
		Dir:          domain.NewInternedString(path[len("example.com/ws/"):]),
		Requirements: reqs,
	}
}

func req(path, version string) domain.Requirement {
	return domain.Requirement{
		ModulePath: domain.NewInternedString(path),
		Version:    version,
	}
}

func testWorkspace() *domain.Workspace {
	return &domain.Workspace{
		Root:       "/ws",
		ModulePath: "example.com/ws",
		Members: []domain.Member{
			member("example.com/ws/server",
				req("github.com/spf13/cobra", "v1.10.2"),
				req("gopkg.in/yaml.v3", "v3.0.1"),
				req("github.com/only/here", "v0.1.0"),
			),
			member("example.com/ws/client",
				req("github.com/spf13/cobra", "v1.9.1"),
				req("gopkg.in/yaml.v3", "v3.0.1"),
			),
		},
	}
}

func config() *domain.Config {
	return &domain.Config{
		PackageName: "workspace-hack",
		Resolver:    domain.ResolverV2,
	}
}

func TestUnify_ResolverV2_SharedOnly(t *testing.T) {
	u := unifier.New(&recordingLogger{})

	plan, err := u.Unify(config(), testWorkspace())
	require.NoError(t, err)

	require.Len(t, plan.Dependencies, 2)
	assert.Equal(t, "github.com/spf13/cobra", plan.Dependencies[0].ModulePath.String())
	assert.Equal(t, "gopkg.in/yaml.v3", plan.Dependencies[1].ModulePath.String())

	// Single-member modules are skipped under resolver 2.
	assert.Equal(t, domain.SkipSingleMember, plan.Skipped["github.com/only/here"])
}

func TestUnify_ResolverV1_AllObserved(t *testing.T) {
	cfg := config()
	cfg.Resolver = domain.ResolverV1
	u := unifier.New(&recordingLogger{})

	plan, err := u.Unify(cfg, testWorkspace())
	require.NoError(t, err)

	require.Len(t, plan.Dependencies, 3)
	assert.NotNil(t, plan.Find("github.com/only/here"))
}

func TestUnify_SemverMaxSelection(t *testing.T) {
	u := unifier.New(&recordingLogger{})

	plan, err := u.Unify(config(), testWorkspace())
	require.NoError(t, err)

	cobra := plan.Find("github.com/spf13/cobra")
	require.NotNil(t, cobra)
	assert.Equal(t, "v1.10.2", cobra.Version)

	// The losing member is recorded as divergent.
	require.Len(t, cobra.Divergent, 1)
	assert.Equal(t, "v1.9.1", cobra.Divergent["example.com/ws/client"])

	yaml := plan.Find("gopkg.in/yaml.v3")
	require.NotNil(t, yaml)
	assert.Empty(t, yaml.Divergent)
}

func TestUnify_ContributorsSorted(t *testing.T) {
	u := unifier.New(&recordingLogger{})

	plan, err := u.Unify(config(), testWorkspace())
	require.NoError(t, err)

	cobra := plan.Find("github.com/spf13/cobra")
	require.NotNil(t, cobra)
	require.Len(t, cobra.Members, 2)
	assert.Equal(t, "example.com/ws/client", cobra.Members[0].String())
	assert.Equal(t, "example.com/ws/server", cobra.Members[1].String())
}

func TestUnify_ExcludedMemberNotTraversed(t *testing.T) {
	cfg := config()
	cfg.Resolver = domain.ResolverV1
	cfg.Excludes.WorkspaceMembers = domain.NewInternedStrings([]string{"example.com/ws/server"})
	u := unifier.New(&recordingLogger{})

	plan, err := u.Unify(cfg, testWorkspace())
	require.NoError(t, err)

	assert.Nil(t, plan.Find("github.com/only/here"))
	cobra := plan.Find("github.com/spf13/cobra")
	require.NotNil(t, cobra)
	assert.Equal(t, "v1.9.1", cobra.Version)
}

func TestUnify_ThirdPartyExcluded(t *testing.T) {
	cfg := config()
	cfg.Excludes.ThirdParty = []domain.ThirdPartyExclude{
		{Name: "gopkg.in/yaml.v3"},
	}
	u := unifier.New(&recordingLogger{})

	plan, err := u.Unify(cfg, testWorkspace())
	require.NoError(t, err)

	assert.Nil(t, plan.Find("gopkg.in/yaml.v3"))
	assert.Equal(t, domain.SkipExcluded, plan.Skipped["gopkg.in/yaml.v3"])
}

func TestUnify_PinnedExcludeLeavesRegistrySource(t *testing.T) {
	ws := testWorkspace()
	// client obtains cobra from a pinned git fork.
	ws.Members[1].Requirements[0].Source = domain.Source{
		Git: "https://github.com/fork/cobra",
		Rev: "15b58a1b5a31",
	}

	cfg := config()
	cfg.Excludes.ThirdParty = []domain.ThirdPartyExclude{
		{Name: "github.com/spf13/cobra", Git: "https://github.com/fork/cobra", Rev: "15b58a1b5a31"},
	}
	u := unifier.New(&recordingLogger{})

	plan, err := u.Unify(cfg, ws)
	require.NoError(t, err)

	// Only the pinned-source requirement is excluded; the registry
	// requirement survives, now contributed by a single member.
	assert.Equal(t, domain.SkipSingleMember, plan.Skipped["github.com/spf13/cobra"])
	assert.Nil(t, plan.Find("github.com/spf13/cobra"))
}

func TestUnify_AggregationModuleNotTraversed(t *testing.T) {
	ws := testWorkspace()
	ws.Members = append(ws.Members, member("example.com/ws/workspace-hack",
		req("github.com/spf13/cobra", "v1.10.2"),
	))

	cfg := config()
	cfg.Resolver = domain.ResolverV1
	u := unifier.New(&recordingLogger{})

	plan, err := u.Unify(cfg, ws)
	require.NoError(t, err)

	cobra := plan.Find("github.com/spf13/cobra")
	require.NotNil(t, cobra)
	for _, m := range cobra.Members {
		assert.NotEqual(t, "example.com/ws/workspace-hack", m.String())
	}
}

func TestUnify_WarnsOnNoOpExcludes(t *testing.T) {
	cfg := config()
	cfg.Excludes.WorkspaceMembers = domain.NewInternedStrings([]string{"example.com/ws/ghost"})
	cfg.Excludes.ThirdParty = []domain.ThirdPartyExclude{{Name: "github.com/never/required"}}

	log := &recordingLogger{}
	u := unifier.New(log)

	_, err := u.Unify(cfg, testWorkspace())
	require.NoError(t, err)

	require.Len(t, log.warns, 2)
	assert.Contains(t, log.warns[0], "example.com/ws/ghost")
	assert.Contains(t, log.warns[1], "github.com/never/required")
}

func TestUnify_DeterministicOrder(t *testing.T) {
	u := unifier.New(&recordingLogger{})

	first, err := u.Unify(config(), testWorkspace())
	require.NoError(t, err)
	second, err := u.Unify(config(), testWorkspace())
	require.NoError(t, err)

	require.Equal(t, first.Dependencies, second.Dependencies)
}
