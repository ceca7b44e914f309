// Package config provides the hakari.toml configuration loader.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/unify/internal/core/domain"
	"go.trai.ch/unify/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the configuration file name.
const FileName = domain.ConfigFileName

// ConfigDir is the conventional dot-directory checked before the workspace
// root at each level of the discovery walk.
const ConfigDir = ".config"

// Loader implements ports.ConfigLoader over a TOML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers the configuration file starting at cwd and parses it.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return l.loadFile(path)
}

// findConfiguration walks up from cwd looking for .config/hakari.toml, then
// hakari.toml, at each level.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		dotted := filepath.Join(currentDir, ConfigDir, FileName)
		if _, err := os.Stat(dotted); err == nil {
			return dotted, nil
		}

		plain := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(plain); err == nil {
			return plain, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadFile(path string) (*domain.Config, error) {
	// #nosec G304 -- path comes from the discovery walk
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	l.noteUnknownKeys(data)

	cfg, err := mapDocument(&doc)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// noteUnknownKeys surfaces unrecognized top-level keys without failing:
// future schema additions must not break older readers.
func (l *Loader) noteUnknownKeys(data []byte) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return
	}

	unknown := make([]string, 0, len(raw))
	for key := range raw {
		if _, ok := knownKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	for _, key := range unknown {
		l.Logger.Debug(fmt.Sprintf("ignoring unrecognized configuration key %q", key))
	}
}

// mapDocument validates the DTO and converts it into the domain record.
func mapDocument(doc *document) (*domain.Config, error) {
	if doc.HakariPackage == "" {
		return nil, domain.ErrMissingPackageName
	}

	resolver, err := domain.ParseResolverVersion(doc.Resolver)
	if err != nil {
		return nil, err
	}

	var platforms []domain.PlatformTriple
	for _, p := range doc.Platforms {
		triple, err := domain.ParsePlatformTriple(p)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, triple)
	}

	if err := validateExcludes(&doc.TraversalExcludes); err != nil {
		return nil, err
	}

	cfg := &domain.Config{
		PackageName: doc.HakariPackage,
		Resolver:    resolver,
		Platforms:   platforms,
		Excludes: domain.TraversalExcludes{
			WorkspaceMembers: domain.NewInternedStrings(doc.TraversalExcludes.WorkspaceMembers),
		},
	}
	if doc.ExactVersions != nil {
		cfg.ExactVersions = *doc.ExactVersions
	}

	for _, tp := range doc.TraversalExcludes.ThirdParty {
		cfg.Excludes.ThirdParty = append(cfg.Excludes.ThirdParty, domain.ThirdPartyExclude{
			Name: tp.Name,
			Git:  tp.Git,
			Rev:  tp.Rev,
		})
	}

	return cfg, nil
}

func validateExcludes(ex *excludesDTO) error {
	seen := make(map[string]struct{}, len(ex.WorkspaceMembers))
	for _, name := range ex.WorkspaceMembers {
		if _, dup := seen[name]; dup {
			err := zerr.With(domain.ErrDuplicateExclude, "list", "workspace-members")
			return zerr.With(err, "name", name)
		}
		seen[name] = struct{}{}
	}

	seen = make(map[string]struct{}, len(ex.ThirdParty))
	for _, tp := range ex.ThirdParty {
		if tp.Name == "" {
			return zerr.With(domain.ErrConfigParseFailed, "reason", "third-party entry without a name")
		}
		if _, dup := seen[tp.Name]; dup {
			err := zerr.With(domain.ErrDuplicateExclude, "list", "third-party")
			return zerr.With(err, "name", tp.Name)
		}
		seen[tp.Name] = struct{}{}

		if tp.Git != "" && tp.Rev == "" {
			return zerr.With(domain.ErrRevRequired, "name", tp.Name)
		}
	}

	return nil
}

// Save validates the record and writes it back as TOML. A saved
// configuration loads with identical field values.
func (l *Loader) Save(path string, cfg *domain.Config) error {
	doc := documentFromConfig(cfg)
	if err := validateExcludes(&doc.TraversalExcludes); err != nil {
		return err
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return zerr.Wrap(err, "failed to serialize configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create configuration directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // World-readable config
		return zerr.With(zerr.Wrap(err, "failed to write configuration"), "path", path)
	}
	return nil
}

func documentFromConfig(cfg *domain.Config) *document {
	doc := &document{
		HakariPackage: cfg.PackageName,
		Resolver:      cfg.Resolver.String(),
	}
	for _, p := range cfg.Platforms {
		doc.Platforms = append(doc.Platforms, p.String())
	}
	if cfg.ExactVersions {
		exact := true
		doc.ExactVersions = &exact
	}
	for _, m := range cfg.Excludes.WorkspaceMembers {
		doc.TraversalExcludes.WorkspaceMembers = append(doc.TraversalExcludes.WorkspaceMembers, m.String())
	}
	for _, tp := range cfg.Excludes.ThirdParty {
		doc.TraversalExcludes.ThirdParty = append(doc.TraversalExcludes.ThirdParty, thirdPartyDTO{
			Name: tp.Name,
			Git:  tp.Git,
			Rev:  tp.Rev,
		})
	}
	return doc
}

// Starter is the configuration written by init: resolver 2, no platforms,
// empty exclusion lists.
func Starter(packageName string) *domain.Config {
	return &domain.Config{
		PackageName: packageName,
		Resolver:    domain.ResolverV2,
	}
}
