package sparsecs

import "reflect"

// EntityCreated is published by World.Create.
type EntityCreated[E Identifier] struct {
	Entity E
}

// EntityDestroyed is published by World.Destroy after the entity has been
// removed from every pool. Entity is the handle that was destroyed, now
// stale.
type EntityDestroyed[E Identifier] struct {
	Entity E
}

// EventBus dispatches typed events synchronously to subscribed handlers.
// Every World owns one for its lifecycle signals.
//
// Publish does not allocate.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe registers handler for events of type T. Handlers run in
// subscription order.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type `T`.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish sends event to every handler of T.
func Publish[T any](bus *EventBus, event T) {
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}

// HasSubscribers reports whether any handler listens for T.
func HasSubscribers[T any](bus *EventBus) bool {
	return len(bus.handlers[reflect.TypeFor[T]()]) > 0
}

// Reset drops every handler.
func (bus *EventBus) Reset() {
	clear(bus.handlers)
}
