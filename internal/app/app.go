// Package app implements the application layer for unify.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/unify/internal/core/domain"
	"go.trai.ch/unify/internal/core/ports"
	"go.trai.ch/unify/internal/engine/unifier"
	"go.trai.ch/zerr"
)

// configStateKey is the state-store entry holding the configuration
// fingerprint. Member module paths always contain a dot, so the key cannot
// collide with one.
const configStateKey = "config"

// App represents the main application logic.
type App struct {
	loader        ports.ConfigLoader
	scanner       ports.WorkspaceScanner
	unifier       *unifier.Unifier
	writer        ports.ManifestWriter
	fingerprinter ports.Fingerprinter
	store         ports.StateStore
	logger        ports.Logger
	tracer        ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.WorkspaceScanner,
	u *unifier.Unifier,
	writer ports.ManifestWriter,
	fingerprinter ports.Fingerprinter,
	store ports.StateStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:        loader,
		scanner:       scanner,
		unifier:       u,
		writer:        writer,
		fingerprinter: fingerprinter,
		store:         store,
		logger:        logger,
		tracer:        tracer,
	}
}

// Close releases the tracer's recording session.
func (a *App) Close() error {
	return a.tracer.Close()
}

// compute runs the shared pipeline: load configuration, scan the workspace,
// unify.
func (a *App) compute(ctx context.Context, cwd string) (*domain.Config, *domain.Workspace, *domain.Plan, error) {
	cfg, err := a.loader.Load(cwd)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	ctx, scanVertex := a.tracer.Record(ctx, "scan workspace")
	ws, err := a.scanner.Scan(ctx, cwd)
	scanVertex.Complete(err)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to scan workspace")
	}

	_, unifyVertex := a.tracer.Record(ctx, "unify dependencies")
	plan, err := a.unifier.Unify(cfg, ws)
	unifyVertex.Complete(err)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to unify dependencies")
	}

	return cfg, ws, plan, nil
}

// Generate computes the plan and writes the aggregation module. When force
// is false and neither the inputs nor the rendered output changed, the write
// is skipped.
func (a *App) Generate(ctx context.Context, cwd string, force bool) error {
	cfg, ws, plan, err := a.compute(ctx, cwd)
	if err != nil {
		return err
	}

	_, vertex := a.tracer.Record(ctx, "generate "+plan.PackageName)

	if !force {
		stale, diffErr := a.writer.Diff(ws, plan)
		if diffErr == nil && len(stale) == 0 && a.stateCurrent(cfg, ws) {
			vertex.Cached()
			a.logger.Info(fmt.Sprintf("%s is up to date", plan.PackageName))
			return nil
		}
	}

	if err := a.writer.Write(ws, plan); err != nil {
		vertex.Complete(err)
		return zerr.Wrap(err, "failed to write aggregation module")
	}
	vertex.Complete(nil)

	a.recordState(cfg, ws)
	a.logger.Info(fmt.Sprintf("generated %s with %d unified dependencies", plan.PackageName, len(plan.Dependencies)))
	return nil
}

// Check verifies that the aggregation module on disk matches the computed
// plan, and, under exact-versions, that no member requirement diverges from
// the unified pins.
func (a *App) Check(ctx context.Context, cwd string) error {
	cfg, ws, plan, err := a.compute(ctx, cwd)
	if err != nil {
		return err
	}

	stale, err := a.writer.Diff(ws, plan)
	if err != nil {
		return zerr.Wrap(err, "failed to diff aggregation module")
	}
	if len(stale) > 0 {
		return zerr.With(domain.ErrOutputStale, "files", strings.Join(stale, ", "))
	}

	if cfg.ExactVersions {
		if err := a.checkDivergence(plan); err != nil {
			return err
		}
	}

	a.logger.Info(fmt.Sprintf("%s is up to date", plan.PackageName))
	return nil
}

func (a *App) checkDivergence(plan *domain.Plan) error {
	divergent := 0
	for _, dep := range plan.Dependencies {
		for member, version := range dep.Divergent {
			divergent++
			a.logger.Warn(fmt.Sprintf(
				"%s requires %s %s, unified version is %s",
				member, dep.ModulePath.String(), version, dep.Version,
			))
		}
	}
	if divergent > 0 {
		return zerr.With(domain.ErrVersionDivergence, "count", divergent)
	}
	return nil
}

// Validate loads the configuration and, when a workspace is reachable, runs
// the analysis so that no-op exclusion entries surface as warnings.
func (a *App) Validate(ctx context.Context, cwd string) (*domain.Config, error) {
	cfg, err := a.loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	ws, err := a.scanner.Scan(ctx, cwd)
	if err != nil {
		// A valid configuration outside a workspace is still valid.
		a.logger.Warn("configuration is valid, but no workspace was found to check exclusions against")
		return cfg, nil //nolint:nilerr // Scan failure is advisory here
	}

	if _, err := a.unifier.Unify(cfg, ws); err != nil {
		return nil, zerr.Wrap(err, "failed to unify dependencies")
	}
	return cfg, nil
}

// Explain reports how the given module is treated by the current plan.
// Exactly one of the return values is set.
func (a *App) Explain(ctx context.Context, cwd, modulePath string) (*domain.UnifiedDependency, domain.SkipReason, error) {
	_, _, plan, err := a.compute(ctx, cwd)
	if err != nil {
		return nil, "", err
	}

	if dep := plan.Find(modulePath); dep != nil {
		return dep, "", nil
	}
	if reason, ok := plan.Skipped[modulePath]; ok {
		return nil, reason, nil
	}
	return nil, "", zerr.With(domain.ErrModuleNotInPlan, "module", modulePath)
}

// Init writes a starter configuration into cwd: resolver 2, no platforms,
// empty exclusion lists. An existing file is never overwritten.
func (a *App) Init(cwd, packageName string) error {
	path := filepath.Join(cwd, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return zerr.With(domain.ErrConfigExists, "path", path)
	}

	cfg := &domain.Config{
		PackageName: packageName,
		Resolver:    domain.ResolverV2,
	}
	if err := a.loader.Save(path, cfg); err != nil {
		return zerr.Wrap(err, "failed to write starter configuration")
	}

	a.logger.Info("wrote " + path)
	return nil
}

// stateCurrent reports whether the recorded fingerprints match the current
// configuration and members.
func (a *App) stateCurrent(cfg *domain.Config, ws *domain.Workspace) bool {
	recorded, err := a.store.Get(configStateKey)
	if err != nil || recorded == nil || recorded.Fingerprint != a.fingerprinter.ConfigFingerprint(cfg) {
		return false
	}

	for i := range ws.Members {
		m := &ws.Members[i]
		recorded, err := a.store.Get(m.Path.String())
		if err != nil || recorded == nil || recorded.Fingerprint != a.fingerprinter.MemberFingerprint(m) {
			return false
		}
	}
	return true
}

// recordState persists fingerprints after a successful generation. Failures
// are logged, not fatal: the next run simply regenerates.
func (a *App) recordState(cfg *domain.Config, ws *domain.Workspace) {
	now := time.Now()
	put := func(name, fingerprint string) {
		err := a.store.Put(domain.MemberState{Name: name, Fingerprint: fingerprint, UpdatedAt: now})
		if err != nil {
			a.logger.Warn(fmt.Sprintf("failed to record state for %s: %v", name, err))
		}
	}

	put(configStateKey, a.fingerprinter.ConfigFingerprint(cfg))
	for i := range ws.Members {
		m := &ws.Members[i]
		put(m.Path.String(), a.fingerprinter.MemberFingerprint(m))
	}
}
