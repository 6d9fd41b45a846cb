package logging

import (
	"github.com/rs/zerolog"

	"designpatterns/src/events"
)

// EventLogger records published events as debug log entries.
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger wraps logger as an event listener.
func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// Handle logs the event.
func (l *EventLogger) Handle(evt events.Event) {
	l.logger.Debug().
		Str("category", string(evt.Category)).
		Str("payload", evt.Payload).
		Time("at", evt.Timestamp).
		Msg("event published")
}
