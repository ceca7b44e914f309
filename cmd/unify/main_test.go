package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeWorkspace lays out a minimal two-member workspace sharing one
// third-party requirement.
func writeWorkspace(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		"hakari.toml": "hakari-package = \"workspace-hack\"\nresolver = \"2\"\n",
		"go.work":     "go 1.25.3\n\nuse (\n\t./server\n\t./client\n)\n",
		"go.mod":      "module example.com/ws\n\ngo 1.25.3\n",
		"server/go.mod": "module example.com/ws/server\n\ngo 1.25.3\n\n" +
			"require github.com/pkg/errors v0.9.1\n",
		"client/go.mod": "module example.com/ws/client\n\ngo 1.25.3\n\n" +
			"require github.com/pkg/errors v0.9.1\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestRun_Generate(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	writeWorkspace(t, tmpDir)

	originalWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"unify", "generate"}

	exitCode := run()
	assert.Equal(t, 0, exitCode)

	data, err := os.ReadFile(filepath.Join(tmpDir, "workspace-hack", "go.mod"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "github.com/pkg/errors v0.9.1"),
		"generated go.mod should pin the shared requirement, got:\n%s", string(data))
}

func TestRun_NoConfiguration(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()

	originalWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"unify", "generate"}

	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
