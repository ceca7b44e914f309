package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unify/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/unify/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/unify/internal/adapters/genpkg"             //nolint:depguard // Wired in app layer
	"go.trai.ch/unify/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/unify/internal/adapters/state"              //nolint:depguard // Wired in app layer
	"go.trai.ch/unify/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/unify/internal/adapters/workspace"          //nolint:depguard // Wired in app layer
	"go.trai.ch/unify/internal/core/ports"
	"go.trai.ch/unify/internal/engine/unifier"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			workspace.NodeID,
			unifier.NodeID,
			genpkg.NodeID,
			fs.FingerprinterNodeID,
			state.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.WorkspaceScanner](ctx)
	if err != nil {
		return nil, err
	}

	u, err := graft.Dep[*unifier.Unifier](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ManifestWriter](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, scanner, u, writer, fingerprinter, store, log, tracer), nil
}
