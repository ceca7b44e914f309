package ports

import "go.trai.ch/unify/internal/core/domain"

// ManifestWriter renders the aggregation module from a unification plan.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type ManifestWriter interface {
	// Write renders the aggregation module files under the workspace root.
	Write(ws *domain.Workspace, plan *domain.Plan) error

	// Diff recomputes the rendered files and compares them against disk.
	// It returns the workspace-relative paths of files that are missing or
	// differ; an empty slice means the output is current.
	Diff(ws *domain.Workspace, plan *domain.Plan) ([]string, error)
}
