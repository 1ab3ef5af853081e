package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/shoppingcart/pkg/config"
	"github.com/ghuser/shoppingcart/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func newTestBus(t *testing.T) *EventBus {
	t.Helper()
	bus := NewEventBus(&config.Config{EventBufferSize: 16}, logger.Discard())
	bus.retryDelay = time.Millisecond
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard()); err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	sentinel := errors.New("permanent error")
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return sentinel
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard())
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel, got %v", err)
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	handler := func(_ context.Context, _ *message.Message) error {
		cancel()
		return errors.New("fail")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Hour, logger.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 1)
	errCh, err := bus.Subscribe(ctx, "ticket.issued", func(_ context.Context, msg *message.Message) error {
		got <- string(msg.Payload)
		return nil
	})
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	go func() {
		for range errCh {
		}
	}()

	if err := bus.Publish(ctx, "ticket.issued", message.NewMessage(watermill.NewUUID(), []byte(`{"item_count":4}`))); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case payload := <-got:
		if payload != `{"item_count":4}` {
			t.Errorf("payload = %q", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestEventBus_HandlerFailureReachesErrorChannel(t *testing.T) {
	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh, err := bus.Subscribe(ctx, "ticket.issued", func(context.Context, *message.Message) error {
		return errors.New("boom")
	})
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if err := bus.Publish(ctx, "ticket.issued", message.NewMessage(watermill.NewUUID(), nil)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected handler error, got nil")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for handler error")
	}
}

func TestEventBus_PropagatesTraceContext(t *testing.T) {
	tp := setupTracer()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan trace.TraceID, 1)
	errCh, err := bus.Subscribe(ctx, "ticket.issued", func(hctx context.Context, _ *message.Message) error {
		got <- trace.SpanContextFromContext(hctx).TraceID()
		return nil
	})
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	go func() {
		for range errCh {
		}
	}()

	pubCtx, span := tp.Tracer("test").Start(ctx, "issue-ticket")
	defer span.End()
	if err := bus.Publish(pubCtx, "ticket.issued", message.NewMessage(watermill.NewUUID(), nil)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case traceID := <-got:
		if traceID != span.SpanContext().TraceID() {
			t.Errorf("trace id = %s, want %s", traceID, span.SpanContext().TraceID())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestEventBus_Closed(t *testing.T) {
	bus := NewEventBus(&config.Config{}, logger.Discard())
	ctx := context.Background()

	if err := bus.Ping(ctx); err != nil {
		t.Fatalf("Ping() before Close = %v, want nil", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	if err := bus.Ping(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Ping() = %v, want ErrClosed", err)
	}
	if err := bus.Publish(ctx, "t", message.NewMessage("id", nil)); !errors.Is(err, ErrClosed) {
		t.Errorf("Publish() = %v, want ErrClosed", err)
	}
	if _, err := bus.Subscribe(ctx, "t", func(context.Context, *message.Message) error { return nil }); !errors.Is(err, ErrClosed) {
		t.Errorf("Subscribe() = %v, want ErrClosed", err)
	}
}
