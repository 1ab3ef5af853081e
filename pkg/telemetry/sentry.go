package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/shoppingcart/pkg/config"
)

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
// Events raised while running the test suite environment are dropped.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		AttachStacktrace: true,
		TracesSampleRate: 0.2,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if cfg.Environment == config.EnvTesting {
				return nil
			}
			if event.Tags == nil {
				event.Tags = map[string]string{}
			}
			event.Tags["service"] = cfg.ServiceName
			return event
		},
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics.
// Repanic: true so the outer Recovery middleware still writes the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
