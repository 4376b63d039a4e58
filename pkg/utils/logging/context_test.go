package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipdata/pkg/utils/logging"
)

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		logger := slog.Default()
		ctx := logging.With(context.Background(), logger)

		gt.V(t, logging.From(ctx)).Equal(logger)
	})

	t.Run("get default logger from empty context", func(t *testing.T) {
		retrieved := logging.From(context.Background())
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRunID(t *testing.T) {
	t.Run("issue new run ID", func(t *testing.T) {
		id, ctx := logging.CtxRunID(context.Background())
		gt.V(t, id.String()).NotEqual("")

		again, _ := logging.CtxRunID(ctx)
		gt.V(t, again).Equal(id)
	})

	t.Run("different contexts get different IDs", func(t *testing.T) {
		id1, _ := logging.CtxRunID(context.Background())
		id2, _ := logging.CtxRunID(context.Background())
		gt.V(t, id1).NotEqual(id2)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("current time without time function", func(t *testing.T) {
		gt.False(t, logging.CtxTime(context.Background()).IsZero())
	})

	t.Run("custom time function", func(t *testing.T) {
		ctx := logging.CtxWithTime(context.Background(), func() time.Time {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})
		gt.V(t, logging.CtxTime(ctx).Year()).Equal(2024)
	})
}
