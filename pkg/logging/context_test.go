package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/champdiff/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Equal(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger round trips", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)

		assert.Same(t, tl.Logger, logging.FromContext(ctx))
	})

	t.Run("WithLogger nil uses default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Equal(t, logging.Default(), logging.FromContext(ctx))
	})

	t.Run("fields are attached to context logger", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithSource(ctx, "ddragon")
		ctx = logging.WithLocale(ctx, "en_US")
		ctx = logging.WithVersion(ctx, "14.1.1")
		ctx = logging.WithOperation(ctx, "fetch")
		ctx = logging.WithField(ctx, "count", 3)
		ctx = logging.WithField(ctx, "cause", errors.New("boom"))

		logging.FromContext(ctx).Info().Msg("hello")

		assert.True(t, tl.ContainsAll(
			`"source":"ddragon"`,
			`"locale":"en_US"`,
			`"version":"14.1.1"`,
			`"operation":"fetch"`,
			`"count":3`,
			`"cause":"boom"`,
		), tl.Output())
		assert.Equal(t, 1, tl.Count())
	})
}
