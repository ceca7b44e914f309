package ports

import "go.trai.ch/unify/internal/core/domain"

// ConfigLoader defines the interface for loading and saving the unification
// configuration file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration file starting from the given working
	// directory and returns the parsed, validated record.
	Load(cwd string) (*domain.Config, error)

	// Save serializes the configuration back to the given path. A saved
	// configuration loads back with identical field values.
	Save(path string, cfg *domain.Config) error
}
