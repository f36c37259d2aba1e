package event

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testEvent(topic string) Event {
	return Event{
		Topic:     topic,
		Source:    "test",
		Timestamp: time.Now(),
		Payload:   map[string]any{"slug": "brew"},
	}
}

func TestPublish_TopicRouting(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var themeCalls, brandCalls int
	bus.Subscribe(TopicThemeChanged, func(_ context.Context, _ Event) { themeCalls++ })
	bus.Subscribe(TopicBrandUpdated, func(_ context.Context, _ Event) { brandCalls++ })

	bus.Publish(context.Background(), testEvent(TopicThemeChanged))
	bus.Publish(context.Background(), testEvent(TopicThemeChanged))
	bus.Publish(context.Background(), testEvent(TopicBrandUpdated))

	if themeCalls != 2 {
		t.Errorf("theme handler calls = %d, want 2", themeCalls)
	}
	if brandCalls != 1 {
		t.Errorf("brand handler calls = %d, want 1", brandCalls)
	}
}

func TestPublish_DeliversPayload(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var got Event
	bus.Subscribe(TopicThemeChanged, func(_ context.Context, ev Event) { got = ev })

	sent := testEvent(TopicThemeChanged)
	bus.Publish(context.Background(), sent)

	if got.Source != "test" {
		t.Errorf("source = %q, want test", got.Source)
	}
	if got.Payload["slug"] != "brew" {
		t.Errorf("payload = %+v", got.Payload)
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var calls int
	bus.SubscribeAll(func(_ context.Context, _ Event) { calls++ })

	bus.Publish(context.Background(), testEvent(TopicThemeChanged))
	bus.Publish(context.Background(), testEvent(TopicBrandUpdated))
	bus.Publish(context.Background(), testEvent("something.else"))

	if calls != 3 {
		t.Errorf("all-topics handler calls = %d, want 3", calls)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var calls int
	unsub := bus.Subscribe(TopicThemeChanged, func(_ context.Context, _ Event) { calls++ })

	bus.Publish(context.Background(), testEvent(TopicThemeChanged))
	unsub()
	bus.Publish(context.Background(), testEvent(TopicThemeChanged))

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (handler should stop after unsubscribe)", calls)
	}
}

func TestPublish_HandlerPanicIsContained(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var afterCalls int
	bus.Subscribe(TopicThemeChanged, func(_ context.Context, _ Event) { panic("boom") })
	bus.Subscribe(TopicThemeChanged, func(_ context.Context, _ Event) { afterCalls++ })

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped the bus: %v", r)
		}
	}()
	bus.Publish(context.Background(), testEvent(TopicThemeChanged))

	if afterCalls != 1 {
		t.Errorf("handler after the panicking one ran %d times, want 1", afterCalls)
	}
}

func TestPublishAsync(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var calls atomic.Int64
	done := make(chan struct{})
	bus.Subscribe(TopicBrandUpdated, func(_ context.Context, _ Event) {
		calls.Add(1)
		close(done)
	})

	bus.PublishAsync(context.Background(), testEvent(TopicBrandUpdated))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async handler never ran")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestConcurrentPublishSubscribe(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unsub := bus.Subscribe(TopicThemeChanged, func(_ context.Context, _ Event) {})
			unsub()
		}()
		go func() {
			defer wg.Done()
			bus.Publish(context.Background(), testEvent(TopicThemeChanged))
		}()
	}
	wg.Wait()
}
