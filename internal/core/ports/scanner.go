package ports

import (
	"context"

	"go.trai.ch/unify/internal/core/domain"
)

// WorkspaceScanner discovers the workspace and reads its member manifests.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type WorkspaceScanner interface {
	// Scan walks up from cwd to find the workspace definition, then parses
	// every member manifest it lists.
	Scan(ctx context.Context, cwd string) (*domain.Workspace, error)
}
