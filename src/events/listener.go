package events

import (
	"fmt"
	"io"
)

// NamedListener prints every event it receives under its name.
type NamedListener struct {
	Name string
	Out  io.Writer
}

// NewNamedListener builds a printing listener.
func NewNamedListener(name string, out io.Writer) *NamedListener {
	return &NamedListener{Name: name, Out: out}
}

// Handle writes a short report of the event.
func (l *NamedListener) Handle(evt Event) {
	fmt.Fprintf(l.Out, "%s received an event:\n    Type:   %s \n    Value:  %s \n\n", l.Name, evt.Category, evt.Payload)
}

// Demo wires three listeners to file events and replays a short session.
func Demo(w io.Writer) error {
	email := NewNamedListener("Email Listener", w)
	push := NewNamedListener("Push Notifications Listener", w)
	logger := NewNamedListener("Logger Listener", w)

	manager := NewDispatcher(CategoryOpen, CategoryModify, CategorySave)
	manager.
		Subscribe(CategoryOpen, email).
		Subscribe(CategorySave, email).
		Subscribe(CategoryModify, push).
		Subscribe(CategoryOpen, logger).
		Subscribe(CategoryModify, logger)

	manager.Publish(CategoryOpen, "File opened")
	manager.Publish(CategoryModify, "Changes applied to file")

	manager.Unsubscribe(CategoryModify, push)

	manager.Publish(CategoryModify, "More changes applied to file")
	manager.Publish(CategorySave, "Saved changes to file")
	return nil
}
