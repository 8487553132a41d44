package errutil

import (
	"context"
	"fmt"

	"ghroast/pkg/utils/logging"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError reports a fatal error to Sentry (when configured) and logs it
// with its goerr values attached
func HandleError(ctx context.Context, msg string, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
