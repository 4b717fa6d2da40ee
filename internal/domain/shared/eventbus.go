package shared

import "context"

// EventHandler consumes domain events. EventTypes narrows delivery; a nil or
// empty slice makes the handler a wildcard that sees every event.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventPublisher delivers domain events to subscribed handlers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber manages handler registrations. Subscribing without event
// types registers the handler as a wildcard.
type EventSubscriber interface {
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
}

// EventBus is the publish and subscribe surface the application layer uses.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
