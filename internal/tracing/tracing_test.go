package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/config"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), config.Tracing{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_Enabled(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Init(ctx, config.Tracing{
		Endpoint:    "localhost:4318",
		ServiceName: "pet-adoption-test",
		Environment: "test",
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	// Nothing was recorded, so shutdown does not need to reach the collector.
	assert.NoError(t, shutdown(ctx))
}
