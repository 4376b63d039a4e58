package errutil

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipdata/pkg/utils/logging"
)

// upper bound for sending buffered events before the process exits
const flushTimeout = 2 * time.Second

// HandleError reports err to Sentry (no-op when Sentry is not initialized) and logs it with the captured event ID.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	runID, ctx := logging.CtxRunID(ctx)
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", runID.String())
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)
	hub.Flush(flushTimeout)

	logging.From(ctx).Error(msg,
		"error", err,
		"run_id", runID,
		"sentry.EventID", evID,
	)
}
