package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipdata/pkg/utils/errutil"
	"github.com/m-mizutani/zipdata/pkg/utils/logging"
)

func TestHandleError(t *testing.T) {
	t.Run("handle plain error", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", errors.New("test error"))
	})

	t.Run("handle goerr with values and run ID", func(t *testing.T) {
		_, ctx := logging.CtxRunID(context.Background())
		err := goerr.New("fetch failed", goerr.V("url", "https://example.com/a.zip"))
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", nil)
	})
}
