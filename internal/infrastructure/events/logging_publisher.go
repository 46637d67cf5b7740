package events

import (
	"context"
	"sync"

	logginginfra "github.com/alexisbeaulieu97/designtools/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/designtools/internal/ports"
)

// LoggingPublisher delivers node change events to subscribers and records each
// one through the structured logger.
type LoggingPublisher struct {
	logger ports.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates an event publisher backed by logger.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event, then hands it to each subscriber in registration order.
// A failing handler is logged and does not stop delivery to the rest.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}
	logger := p.logger
	if logger == nil {
		logger = logginginfra.NewNoOpLogger()
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	logger.Debug(ctx, "node change published", changeFields(event)...)

	for _, entry := range handlers {
		handler := entry.handler
		if handler == nil {
			continue
		}
		if err := handler(ctx, event); err != nil {
			logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "subscription", entry.id, "error", err)
		}
	}

	return nil
}

// Subscribe registers a handler for the provided event type.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i], handlers[i+1:]...)
					break
				}
			}
		},
	}, nil
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
}

// changeLogKeys are the node change payload keys worth logging, most
// identifying first.
var changeLogKeys = []string{"node_id", "class_name", "text", "element_type"}

func changeFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	payload, ok := event.Payload().(map[string]interface{})
	if !ok {
		return fields
	}
	for _, key := range changeLogKeys {
		if value, found := payload[key]; found {
			fields = append(fields, key, value)
		}
	}
	return fields
}
