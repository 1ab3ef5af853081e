// Package events provides an in-process pub/sub EventBus built on Watermill's
// GoChannel transport.
//
// Delivery semantics:
//   - every subscriber of a topic receives every message published after it
//     subscribed (broadcast); nothing is persisted or replayed.
//   - Publish does not wait for subscribers to acknowledge.
//
// Handlers should be idempotent. On failure a message is retried up to 3 times
// with exponential backoff before it is dropped and the error is reported.
//
// OTel context propagation: trace context is injected into message metadata on Publish
// and extracted in Subscribe, so handler spans join the publisher's trace.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/shoppingcart/pkg/config"
	"github.com/ghuser/shoppingcart/pkg/logger"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	shutdownTimeout = 30 * time.Second
)

// ErrClosed is returned by Publish, Subscribe and Ping after Close.
var ErrClosed = errors.New("events: bus closed")

// Handler processes one message. Returning an error triggers a retry.
type Handler func(context.Context, *message.Message) error

// EventBus is an in-process pub/sub bus. It is safe for concurrent use.
type EventBus struct {
	pubsub *gochannel.GoChannel
	log    logger.Logger
	wg     sync.WaitGroup
	closed atomic.Bool
	// retryDelay is the first backoff step; tests shorten it.
	retryDelay time.Duration
}

// NewEventBus returns a GoChannel-backed EventBus. cfg.EventBufferSize sets
// the per-subscriber output buffer.
func NewEventBus(cfg *config.Config, log logger.Logger) *EventBus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: cfg.EventBufferSize},
		&slogAdapter{log: log},
	)
	return &EventBus{
		pubsub:     pubsub,
		log:        log,
		retryDelay: retryBaseDelay,
	}
}

// Publish sends one or more messages to the given topic.
// OTel trace context from ctx is injected into each message's metadata so
// the receiving subscriber can restore the trace and continue the span tree.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	if q.closed.Load() {
		return ErrClosed
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
	if err := q.pubsub.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe registers handler to process messages from topic asynchronously.
// The handler receives a context with the publisher's OTel trace restored from
// message metadata.
//
// Acknowledgement is managed by the bus:
//   - handler returns nil   → Ack (message consumed)
//   - handler returns error → retried up to 3× with exponential backoff (1s, 2s, 4s)
//   - all retries exhausted → error forwarded to the returned channel, message
//     dropped (GoChannel redelivers Nacked messages forever, so it is Acked)
//
// The returned error channel is buffered (capacity 100). Callers must drain it:
//
//	errCh, err := bus.Subscribe(ctx, topic, handler)
//	go func() { for err := range errCh { log.ErrorContext(ctx, "subscriber error", "error", err) } }()
//
// The subscription ends when ctx is cancelled or the bus is closed. All
// in-flight handlers complete before Close() returns.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	if q.closed.Load() {
		return nil, ErrClosed
	}

	ch, err := q.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)
	propagator := otel.GetTextMapPropagator()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			carrier := propagation.MapCarrier{}
			for k, v := range msg.Metadata {
				carrier[k] = v
			}
			msgCtx := propagator.Extract(ctx, carrier)

			if err := retryWithBackoff(msgCtx, msg, handler, maxRetries, q.retryDelay, q.log); err != nil {
				select {
				case errCh <- err:
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
			}
			msg.Ack()
		}
	}()

	return errCh, nil
}

// retryWithBackoff calls handler up to maxRetries times with exponential backoff.
// Returns nil on first success; returns the last error after all retries exhaust.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler Handler,
	maxRetries int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt < maxRetries {
			log.WarnContext(ctx, "events: handler failed, retrying",
				"message_uuid", msg.UUID,
				"attempt", attempt,
				"max_retries", maxRetries,
				"next_delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", maxRetries, err)
}

// Ping reports whether the bus still accepts messages.
func (q *EventBus) Ping(_ context.Context) error {
	if q.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Close stops all subscriptions and waits (30 s max) for in-flight handlers.
// Calling Close more than once is a no-op.
func (q *EventBus) Close() error {
	if !q.closed.CompareAndSwap(false, true) {
		return nil
	}

	if err := q.pubsub.Close(); err != nil {
		return fmt.Errorf("events: close pubsub: %w", err)
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	select {
	case <-done:
	case <-ctx.Done():
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}
	return nil
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
