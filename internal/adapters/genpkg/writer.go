// Package genpkg renders the aggregation module: a synthetic member whose
// manifest pins the unified third-party versions so every workspace build
// resolves the same set.
package genpkg

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"go.trai.ch/unify/internal/core/domain"
	"go.trai.ch/unify/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/modfile"
)

// goVersion is written into the generated manifest.
const goVersion = "1.25.3"

var _ ports.ManifestWriter = (*Writer)(nil)

// Writer implements ports.ManifestWriter on the local filesystem.
type Writer struct {
	Logger ports.Logger
}

// NewWriter creates a new Writer with the given logger.
func NewWriter(logger ports.Logger) *Writer {
	return &Writer{Logger: logger}
}

// Write renders the aggregation module files under the workspace root.
func (w *Writer) Write(ws *domain.Workspace, plan *domain.Plan) error {
	files, err := render(ws, plan)
	if err != nil {
		return err
	}

	dir := filepath.Join(ws.Root, plan.PackageName)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create aggregation module directory")
	}

	for name, content := range files {
		path := filepath.Join(ws.Root, name)
		if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // Generated source files
			return zerr.With(zerr.Wrap(err, "failed to write generated file"), "path", path)
		}
		w.Logger.Debug(fmt.Sprintf("wrote %s", name))
	}

	return nil
}

// Diff recomputes the rendered files and compares them against disk. The
// returned paths are workspace-relative and sorted.
func (w *Writer) Diff(ws *domain.Workspace, plan *domain.Plan) ([]string, error) {
	files, err := render(ws, plan)
	if err != nil {
		return nil, err
	}

	stale := make([]string, 0, len(files))
	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(ws.Root, name)) // #nosec G304
		if err != nil || !bytes.Equal(got, want) {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)
	return stale, nil
}

// render produces the generated files keyed by workspace-relative path.
func render(ws *domain.Workspace, plan *domain.Plan) (map[string][]byte, error) {
	manifest, err := renderManifest(ws, plan)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{
		filepath.Join(plan.PackageName, "go.mod"): manifest,
		filepath.Join(plan.PackageName, "doc.go"): renderDoc(plan),
	}, nil
}

func renderManifest(ws *domain.Workspace, plan *domain.Plan) ([]byte, error) {
	modPath := plan.PackageName
	if ws.ModulePath != "" {
		modPath = ws.ModulePath + "/" + plan.PackageName
	}

	f := &modfile.File{}
	if err := f.AddModuleStmt(modPath); err != nil {
		return nil, zerr.Wrap(err, "failed to render module statement")
	}
	if err := f.AddGoStmt(goVersion); err != nil {
		return nil, zerr.Wrap(err, "failed to render go statement")
	}
	for _, dep := range plan.Dependencies {
		f.AddNewRequire(dep.ModulePath.String(), dep.Version, false)
	}

	data, err := f.Format()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to format generated manifest")
	}
	return data, nil
}

func renderDoc(plan *domain.Plan) []byte {
	var b strings.Builder
	b.WriteString("// Code generated by unify. DO NOT EDIT.\n\n")
	b.WriteString("// Package " + packageIdent(plan.PackageName) + " exists only to unify third-party\n")
	b.WriteString("// dependency versions across the workspace. It exports nothing and must\n")
	b.WriteString("// not be imported.\n")
	b.WriteString("package " + packageIdent(plan.PackageName) + "\n")
	return []byte(b.String())
}

// packageIdent derives a valid Go package identifier from the configured
// aggregation package name.
func packageIdent(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	ident := b.String()
	if ident == "" || unicode.IsDigit(rune(ident[0])) {
		ident = "workspacehack"
	}
	return ident
}
