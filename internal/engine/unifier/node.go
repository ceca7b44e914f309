package unifier

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unify/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unify/internal/core/ports"
)

// NodeID is the unique identifier for the unifier Graft node.
const NodeID graft.ID = "engine.unifier"

func init() {
	graft.Register(graft.Node[*Unifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Unifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
