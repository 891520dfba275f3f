// Package model provides the behaviour model primitives an entity exposes to its components
//
// A behaviour model is a container of named fields. Capability components bind
// getters, conditions and handlers into the fields once at registration time;
// controllers then drive the same fields every tick. Neither side holds a
// reference to the other.
//
// Field kinds:
//   - Value / ModifiableValue / Collection: read through a single bound getter
//   - Event: ordered multi-subscriber notification
//   - Function: single bound request/response handler
//   - Attempt: one-shot action gated by a condition
//   - Activity: start/stop coordination surface whose state lives in the binder
//
// All dispatch is synchronous and single-threaded. Handlers run in subscription
// order. A handler must not start or stop the activity that is notifying it;
// there is no re-entrancy protection.
package model

// HandlerID identifies a subscription for later removal
type HandlerID uint64

type subscriber[F any] struct {
	id HandlerID
	fn F
}

// subscribers is the ordered handler list shared by all event arities
type subscribers[F any] struct {
	list   []subscriber[F]
	nextID HandlerID
}

func (s *subscribers[F]) add(fn F) HandlerID {
	s.nextID++
	s.list = append(s.list, subscriber[F]{id: s.nextID, fn: fn})
	return s.nextID
}

func (s *subscribers[F]) remove(id HandlerID) bool {
	for i, sub := range s.list {
		if sub.id == id {
			// Copy-on-remove keeps a snapshot taken by an in-flight Fire intact
			next := make([]subscriber[F], 0, len(s.list)-1)
			next = append(next, s.list[:i]...)
			next = append(next, s.list[i+1:]...)
			s.list = next
			return true
		}
	}
	return false
}

// snapshot returns the list as of now; handlers added during dispatch are not invoked
func (s *subscribers[F]) snapshot() []subscriber[F] {
	return s.list[:len(s.list):len(s.list)]
}

// Event is a parameterless notification channel
type Event struct {
	name string
	subs subscribers[func()]
}

// NewEvent creates a named event
func NewEvent(name string) *Event {
	return &Event{name: name}
}

// Name returns the field name
func (e *Event) Name() string { return e.name }

// Subscribe appends a handler, invoked after all earlier subscribers
func (e *Event) Subscribe(fn func()) HandlerID {
	return e.subs.add(fn)
}

// Unsubscribe removes a handler, returns false if the id is unknown
func (e *Event) Unsubscribe(id HandlerID) bool {
	return e.subs.remove(id)
}

// Len returns the subscriber count
func (e *Event) Len() int { return len(e.subs.list) }

// Fire invokes all handlers in subscription order
func (e *Event) Fire() {
	for _, s := range e.subs.snapshot() {
		s.fn()
	}
}

// Event1 is a notification channel with one argument
type Event1[A any] struct {
	name string
	subs subscribers[func(A)]
}

// NewEvent1 creates a named single-argument event
func NewEvent1[A any](name string) *Event1[A] {
	return &Event1[A]{name: name}
}

// Name returns the field name
func (e *Event1[A]) Name() string { return e.name }

// Subscribe appends a handler
func (e *Event1[A]) Subscribe(fn func(A)) HandlerID {
	return e.subs.add(fn)
}

// Unsubscribe removes a handler
func (e *Event1[A]) Unsubscribe(id HandlerID) bool {
	return e.subs.remove(id)
}

// Len returns the subscriber count
func (e *Event1[A]) Len() int { return len(e.subs.list) }

// Fire invokes all handlers with a
func (e *Event1[A]) Fire(a A) {
	for _, s := range e.subs.snapshot() {
		s.fn(a)
	}
}

// Event2 is a notification channel with two arguments
type Event2[A, B any] struct {
	name string
	subs subscribers[func(A, B)]
}

// NewEvent2 creates a named two-argument event
func NewEvent2[A, B any](name string) *Event2[A, B] {
	return &Event2[A, B]{name: name}
}

// Name returns the field name
func (e *Event2[A, B]) Name() string { return e.name }

// Subscribe appends a handler
func (e *Event2[A, B]) Subscribe(fn func(A, B)) HandlerID {
	return e.subs.add(fn)
}

// Unsubscribe removes a handler
func (e *Event2[A, B]) Unsubscribe(id HandlerID) bool {
	return e.subs.remove(id)
}

// Len returns the subscriber count
func (e *Event2[A, B]) Len() int { return len(e.subs.list) }

// Fire invokes all handlers with a, b
func (e *Event2[A, B]) Fire(a A, b B) {
	for _, s := range e.subs.snapshot() {
		s.fn(a, b)
	}
}
