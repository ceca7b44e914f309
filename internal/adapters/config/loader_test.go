package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unify/internal/adapters/config"
	"go.trai.ch/unify/internal/core/domain"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	debugs []string
	warns  []string
}

func (l *recordingLogger) Debug(msg string) { l.debugs = append(l.debugs, msg) }
func (l *recordingLogger) Info(string)      {}
func (l *recordingLogger) Warn(msg string)  { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(error)      {}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return dir
}

func TestLoad_Success(t *testing.T) {
	dir := writeConfig(t, `
hakari-package = "workspace-hack"
resolver = "2"

[traversal-excludes]
workspace-members = ["example.com/ws/bench"]
third-party = [
    { name = "github.com/example/criterion" },
    { name = "github.com/azure/azure-core", git = "https://github.com/azure/azure-sdk", rev = "15b58a1b5a31" },
]
`)

	loader := config.NewLoader(&recordingLogger{})
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	// The documented accessor scenario.
	assert.Equal(t, "workspace-hack", cfg.PackageName)
	assert.Equal(t, 2, int(cfg.Resolver))

	assert.False(t, cfg.ExactVersions)
	assert.Empty(t, cfg.Platforms)

	require.Len(t, cfg.Excludes.WorkspaceMembers, 1)
	assert.Equal(t, "example.com/ws/bench", cfg.Excludes.WorkspaceMembers[0].String())

	require.Len(t, cfg.Excludes.ThirdParty, 2)
	assert.False(t, cfg.Excludes.ThirdParty[0].Pinned())
	assert.True(t, cfg.Excludes.ThirdParty[1].Pinned())
	assert.Equal(t, "15b58a1b5a31", cfg.Excludes.ThirdParty[1].Rev)
}

func TestLoad_Platforms(t *testing.T) {
	dir := writeConfig(t, `
hakari-package = "workspace-hack"
resolver = "2"
platforms = ["x86_64-unknown-linux-gnu", "aarch64-apple-darwin"]
exact-versions = true
`)

	loader := config.NewLoader(&recordingLogger{})
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.ExactVersions)
	require.Len(t, cfg.Platforms, 2)
	assert.Equal(t, "x86_64-unknown-linux-gnu", cfg.Platforms[0].String())
	assert.Equal(t, "linux", cfg.Platforms[0].OS)
}

func TestLoad_UnknownResolver(t *testing.T) {
	dir := writeConfig(t, `
hakari-package = "workspace-hack"
resolver = "3"
`)

	loader := config.NewLoader(&recordingLogger{})
	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownResolver))
}

func TestLoad_MissingPackageName(t *testing.T) {
	dir := writeConfig(t, `resolver = "2"`)

	loader := config.NewLoader(&recordingLogger{})
	_, err := loader.Load(dir)
	require.ErrorIs(t, err, domain.ErrMissingPackageName)
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := writeConfig(t, `hakari-package = `)

	loader := config.NewLoader(&recordingLogger{})
	_, err := loader.Load(dir)
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoad_DuplicateExcludes(t *testing.T) {
	dir := writeConfig(t, `
hakari-package = "workspace-hack"
resolver = "2"

[traversal-excludes]
workspace-members = ["example.com/ws/bench", "example.com/ws/bench"]
`)

	loader := config.NewLoader(&recordingLogger{})
	_, err := loader.Load(dir)
	require.ErrorIs(t, err, domain.ErrDuplicateExclude)
}

func TestLoad_GitWithoutRev(t *testing.T) {
	dir := writeConfig(t, `
hakari-package = "workspace-hack"
resolver = "2"

[traversal-excludes]
third-party = [
    { name = "github.com/azure/azure-core", git = "https://github.com/azure/azure-sdk" },
]
`)

	loader := config.NewLoader(&recordingLogger{})
	_, err := loader.Load(dir)
	require.ErrorIs(t, err, domain.ErrRevRequired)
}

func TestLoad_UnknownKeysTolerated(t *testing.T) {
	dir := writeConfig(t, `
hakari-package = "workspace-hack"
resolver = "2"
dep-format-version = "4"

[future-section]
key = "value"
`)

	log := &recordingLogger{}
	loader := config.NewLoader(log)
	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "workspace-hack", cfg.PackageName)

	// Unknown keys are noted, in sorted order, not rejected.
	require.Len(t, log.debugs, 2)
	assert.Contains(t, log.debugs[0], "dep-format-version")
	assert.Contains(t, log.debugs[1], "future-section")
}

func TestLoad_NotFound(t *testing.T) {
	loader := config.NewLoader(&recordingLogger{})
	_, err := loader.Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}
