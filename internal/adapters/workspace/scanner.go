// Package workspace implements workspace discovery and member manifest
// scanning over go.work and go.mod files.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/unify/internal/core/domain"
	"go.trai.ch/unify/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/sync/errgroup"
)

// WorkFileName is the workspace definition file.
const WorkFileName = "go.work"

// ModFileName is the member manifest file.
const ModFileName = "go.mod"

// memberParallelism bounds concurrent manifest reads.
const memberParallelism = 8

// Scanner implements ports.WorkspaceScanner.
type Scanner struct {
	Logger ports.Logger
}

var _ ports.WorkspaceScanner = (*Scanner)(nil)

// NewScanner creates a new Scanner with the given logger.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{Logger: logger}
}

// Scan walks up from cwd to the nearest go.work and parses every member
// manifest it lists.
func (s *Scanner) Scan(ctx context.Context, cwd string) (*domain.Workspace, error) {
	root, err := s.findWorkspace(cwd)
	if err != nil {
		return nil, err
	}

	workPath := filepath.Join(root, WorkFileName)
	// #nosec G304 -- workPath comes from the discovery walk
	data, err := os.ReadFile(workPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read workspace definition"), "path", workPath)
	}

	work, err := modfile.ParseWork(workPath, data, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", workPath)
	}

	ws := &domain.Workspace{
		Root:       root,
		ModulePath: s.rootModulePath(root),
		Members:    make([]domain.Member, len(work.Use)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(memberParallelism)
	for i, use := range work.Use {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			member, err := s.scanMember(root, use.Path)
			if err != nil {
				return err
			}
			ws.Members[i] = *member
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ws, nil
}

func (s *Scanner) findWorkspace(cwd string) (string, error) {
	currentDir := cwd
	for {
		workPath := filepath.Join(currentDir, WorkFileName)
		if _, err := os.Stat(workPath); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrWorkspaceNotFound, "cwd", cwd)
}

// rootModulePath reads the module path of the go.mod next to go.work, when
// present. It anchors the generated aggregation module's own path.
func (s *Scanner) rootModulePath(root string) string {
	data, err := os.ReadFile(filepath.Join(root, ModFileName)) // #nosec G304
	if err != nil {
		return ""
	}
	f, err := modfile.ParseLax(ModFileName, data, nil)
	if err != nil || f.Module == nil {
		return ""
	}
	return f.Module.Mod.Path
}

func (s *Scanner) scanMember(root, useDir string) (*domain.Member, error) {
	dir := useDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, useDir)
	}
	relDir, err := filepath.Rel(root, dir)
	if err != nil {
		relDir = useDir
	}

	modPath := filepath.Join(dir, ModFileName)
	// #nosec G304 -- path derives from the workspace definition
	data, err := os.ReadFile(modPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.Logger.Warn(fmt.Sprintf("%s missing in member %s, skipping", ModFileName, relDir))
			return &domain.Member{Dir: domain.NewInternedString(relDir)}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read member manifest"), "path", modPath)
	}

	f, err := modfile.Parse(modPath, data, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", modPath)
	}
	if f.Module == nil {
		return nil, zerr.With(domain.ErrManifestParseFailed, "path", modPath)
	}

	member := &domain.Member{
		Path: domain.NewInternedString(f.Module.Mod.Path),
		Dir:  domain.NewInternedString(relDir),
	}

	pins := gitPins(f)
	for _, req := range f.Require {
		if req.Indirect {
			continue
		}
		member.Requirements = append(member.Requirements, domain.Requirement{
			ModulePath: domain.NewInternedString(req.Mod.Path),
			Version:    req.Mod.Version,
			Source:     pins[req.Mod.Path],
		})
	}

	return member, nil
}

// gitPins maps replaced module paths to their pinned git source. Only
// replace directives targeting a pseudo-version count as pins: a directory
// replacement or a plain version bump carries no revision to match against.
func gitPins(f *modfile.File) map[string]domain.Source {
	pins := make(map[string]domain.Source)
	for _, rep := range f.Replace {
		if rep.New.Version == "" || !module.IsPseudoVersion(rep.New.Version) {
			continue
		}
		rev, err := module.PseudoVersionRev(rep.New.Version)
		if err != nil {
			continue
		}
		pins[rep.Old.Path] = domain.Source{
			Git: "https://" + rep.New.Path,
			Rev: rev,
		}
	}
	return pins
}
