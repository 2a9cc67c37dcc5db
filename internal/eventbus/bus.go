// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package eventbus is a synchronous, in-process pub/sub helper.
//
// Callbacks are registered under an event name and invoked in registration
// order, in the publisher's goroutine, every time that event is published.
//
//	bus := eventbus.New().
//		Subscribe("data", func(args ...any) { fmt.Println("Received:", args[0]) })
//	bus.Publish("data", 42)
package eventbus

import (
	"github.com/ManuGH/eventbus/internal/log"
	"github.com/ManuGH/eventbus/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Callback receives the arguments passed to Publish, positionally.
type Callback func(args ...any)

// EventBus maps event names to ordered callback lists.
//
// An EventBus is not safe for concurrent use. It is meant to be owned by a
// single goroutine; concurrent Subscribe/Publish calls are undefined.
type EventBus struct {
	id     string
	events map[string][]Callback
	logger zerolog.Logger
}

// Option configures an EventBus.
type Option func(*EventBus)

// WithLogger overrides the component logger used by the bus.
func WithLogger(l zerolog.Logger) Option {
	return func(b *EventBus) {
		b.logger = l
	}
}

// WithID sets the instance id attached to log entries.
func WithID(id string) Option {
	return func(b *EventBus) {
		b.id = id
	}
}

// New returns an empty bus.
func New(opts ...Option) *EventBus {
	b := &EventBus{
		id:     uuid.NewString(),
		events: make(map[string][]Callback),
		logger: log.WithComponent("eventbus"),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With().Str(log.FieldBusID, b.id).Logger()
	return b
}

// ID returns the bus instance id.
func (b *EventBus) ID() string {
	return b.id
}

// Subscribe appends cb to the callbacks of event and returns the bus so calls
// can be chained. Registering the same callback twice makes it run twice per
// publish. A nil callback is dropped.
func (b *EventBus) Subscribe(event string, cb Callback) *EventBus {
	if cb == nil {
		b.logger.Warn().
			Str(log.FieldEvent, event).
			Msg("ignoring nil callback")
		return b
	}

	b.events[event] = append(b.events[event], cb)
	metrics.IncSubscription(event)

	b.logger.Debug().
		Str(log.FieldEvent, event).
		Int(log.FieldSubscribers, len(b.events[event])).
		Msg("callback subscribed")
	return b
}

// Publish invokes every callback registered for event, in order, passing args
// to each. Publishing an event nobody subscribed to does nothing.
//
// Callbacks are not isolated from each other: if one panics, the panic
// propagates to the caller and the remaining callbacks are skipped.
func (b *EventBus) Publish(event string, args ...any) {
	metrics.IncPublish(event)

	callbacks := b.events[event]
	if len(callbacks) == 0 {
		metrics.IncUnrouted(event)
		b.logger.Debug().
			Str(log.FieldEvent, event).
			Msg("publish without subscribers")
		return
	}

	b.logger.Debug().
		Str(log.FieldEvent, event).
		Int(log.FieldSubscribers, len(callbacks)).
		Int(log.FieldArgs, len(args)).
		Msg("publishing event")

	for _, cb := range callbacks {
		cb(args...)
		metrics.IncInvocation(event)
	}
}

// SubscriberCount reports how many callbacks are registered for event.
// Unknown events report zero.
func (b *EventBus) SubscriberCount(event string) int {
	return len(b.events[event])
}
