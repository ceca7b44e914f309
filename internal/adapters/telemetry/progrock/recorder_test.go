package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unify/internal/adapters/telemetry/progrock"
	"go.trai.ch/unify/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	require.NoError(t, recorder.Close())
}

func TestRecord_VertexLifecycle(t *testing.T) {
	recorder := progrock.New()
	defer recorder.Close() //nolint:errcheck // Best effort close in test

	ctx, vertex := recorder.Record(context.Background(), "scan")
	require.NotNil(t, vertex)

	// The vertex travels with the context.
	assert.Equal(t, vertex, ports.VertexFromContext(ctx))

	_, err := vertex.Stdout().Write([]byte("2 members\n"))
	require.NoError(t, err)
	vertex.Complete(nil)

	_, failed := recorder.Record(context.Background(), "generate")
	failed.Complete(errors.New("disk full"))
}
