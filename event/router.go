package event

// Handler processes specific event types within a context T
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, event Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// handlerFunc adapts a plain function to Handler
type handlerFunc[T any] struct {
	fn    func(ctx T, event Event)
	types []EventType
}

func (h handlerFunc[T]) HandleEvent(ctx T, event Event) { h.fn(ctx, event) }

func (h handlerFunc[T]) EventTypes() []EventType { return h.types }

// On wraps fn as a Handler for the given event types
func On[T any](fn func(ctx T, event Event), types ...EventType) Handler[T] {
	return handlerFunc[T]{fn: fn, types: types}
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Context T is passed to handlers (the widget that emitted)
//   - A panicking handler is isolated: later handlers and events still run
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
	onPanic  func(ev Event, r any)
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// OnPanic sets the callback that receives recovered handler panics
func (r *Router[T]) OnPanic(fn func(ev Event, r any)) {
	r.onPanic = fn
}

// DispatchAll consumes all pending events and routes to handlers
// Events are processed in FIFO order; returns the number consumed
func (r *Router[T]) DispatchAll(ctx T) int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			r.invoke(h, ctx, ev)
		}
	}
	return len(events)
}

func (r *Router[T]) invoke(h Handler[T], ctx T, ev Event) {
	defer func() {
		if rec := recover(); rec != nil && r.onPanic != nil {
			r.onPanic(ev, rec)
		}
	}()
	h.HandleEvent(ctx, ev)
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
