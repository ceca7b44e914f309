package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unify/internal/adapters/logger"
	"go.trai.ch/unify/internal/core/ports"
)

const NodeID graft.ID = "adapter.workspace_scanner"

func init() {
	graft.Register(graft.Node[ports.WorkspaceScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceScanner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log), nil
		},
	})
}
