package ports

import "context"

const (
	// EventUpdateFileClassName is emitted when the selected node's class name changes.
	EventUpdateFileClassName = "UPDATE_FILE_CLASS_NAME"
	// EventUpdateFileText is emitted when the selected node's text content changes.
	EventUpdateFileText = "UPDATE_FILE_TEXT"
	// EventCreateFileElement is emitted when a new element is requested under a node.
	EventCreateFileElement = "CREATE_FILE_ELEMENT"
)

// DomainEvent represents a significant occurrence within the editor. Events
// carry structured payloads that subscribers use to write source files or
// refresh previews.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run, so edits reach the
// subscriber in the order they were made. Implementations must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// surfaced via returned errors so publishers can log them and continue
// delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events.
type Subscription interface {
	Unsubscribe()
}
