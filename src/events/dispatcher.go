package events

import (
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Category identifies published event categories.
type Category string

const (
	// CategoryOpen is emitted when a file is opened.
	CategoryOpen Category = "open"
	// CategorySave is emitted when a file is saved.
	CategorySave Category = "save"
	// CategoryModify is emitted when a file changes.
	CategoryModify Category = "modify"
	// CategoryCommand is emitted after an interactive command completes.
	CategoryCommand Category = "command"
)

// Event is what listeners receive on publish.
type Event struct {
	Category  Category
	Payload   string
	Timestamp time.Time
}

// Listener consumes published events. Listeners are matched by interface
// equality on unsubscribe; a listener whose value is not comparable can be
// subscribed but never removed.
type Listener interface {
	Handle(Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

// Handle calls f(evt).
func (f ListenerFunc) Handle(evt Event) {
	f(evt)
}

// Dispatcher routes events to listeners subscribed per category. The category
// set is fixed at construction; anything outside it is ignored.
type Dispatcher struct {
	mu         sync.RWMutex
	categories []Category
	listeners  map[Category][]Listener
	logger     zerolog.Logger
	now        func() time.Time
}

// NewDispatcher creates a dispatcher accepting only the given categories.
func NewDispatcher(categories ...Category) *Dispatcher {
	d := &Dispatcher{
		listeners: make(map[Category][]Listener, len(categories)),
		logger:    zerolog.Nop(),
		now:       time.Now,
	}
	for _, c := range categories {
		if _, ok := d.listeners[c]; ok {
			continue
		}
		d.listeners[c] = nil
		d.categories = append(d.categories, c)
	}
	return d
}

// SetLogger overrides the diagnostics logger.
func (d *Dispatcher) SetLogger(logger zerolog.Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = logger
}

// Subscribe appends listener to category. Subscribing twice delivers twice.
func (d *Dispatcher) Subscribe(category Category, listener Listener) *Dispatcher {
	if listener == nil {
		return d
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	current, ok := d.listeners[category]
	if !ok {
		return d
	}
	d.listeners[category] = append(current, listener)
	return d
}

// Unsubscribe removes the first subscription of listener to category.
func (d *Dispatcher) Unsubscribe(category Category, listener Listener) *Dispatcher {
	if !matchable(listener) {
		return d
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	current, ok := d.listeners[category]
	if !ok {
		return d
	}
	for i, l := range current {
		if !matchable(l) || l != listener {
			continue
		}
		next := make([]Listener, 0, len(current)-1)
		next = append(next, current[:i]...)
		next = append(next, current[i+1:]...)
		d.listeners[category] = next
		break
	}
	return d
}

// Publish delivers payload to every listener of category in subscription order.
// A panicking listener is logged and skipped; the rest still run.
func (d *Dispatcher) Publish(category Category, payload string) {
	d.mu.RLock()
	current, ok := d.listeners[category]
	snapshot := make([]Listener, len(current))
	copy(snapshot, current)
	logger := d.logger
	d.mu.RUnlock()
	if !ok {
		return
	}
	evt := Event{Category: category, Payload: payload, Timestamp: d.now()}
	for i, l := range snapshot {
		deliver(logger, i, l, evt)
	}
}

// matchable reports whether l can be matched with == without panicking.
func matchable(l Listener) bool {
	if l == nil {
		return false
	}
	return reflect.ValueOf(l).Comparable()
}

func deliver(logger zerolog.Logger, index int, l Listener, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Str("category", string(evt.Category)).
				Int("listener", index).
				Interface("panic", r).
				Msg("listener panicked")
		}
	}()
	l.Handle(evt)
}

// Known reports whether category was registered at construction.
func (d *Dispatcher) Known(category Category) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.listeners[category]
	return ok
}

// Categories lists registered categories in registration order.
func (d *Dispatcher) Categories() []Category {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Category, len(d.categories))
	copy(out, d.categories)
	return out
}

// Subscribers counts subscriptions held for category.
func (d *Dispatcher) Subscribers(category Category) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[category])
}
