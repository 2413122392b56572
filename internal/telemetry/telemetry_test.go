package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	ctx := context.Background()

	shutdown, err := Setup(ctx, Options{ServiceName: "relicrunner"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(ctx))
}

func TestOptionsEnabled(t *testing.T) {
	assert.False(t, Options{}.Enabled())
	assert.True(t, Options{APIKey: "abc"}.Enabled())
}

func TestTracersStartSpans(t *testing.T) {
	ctx := context.Background()

	// no provider registered: spans come from the global no-op provider
	_, span := Tracer("test").Start(ctx, "test.span")
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())
	span.End()
}
