// Package journal
package journal

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Event represents a journaled event.
type Event struct {
	Time        time.Time
	Type        string // e.g., "order", "error"
	Description string
	Data        map[string]any
}

// Journaler records events for diagnostics.
type Journaler interface {
	Record(event Event)
}

// LogJournal writes events to the shared log sink (console + file).
type LogJournal struct{}

func New() LogJournal {
	return LogJournal{}
}

func (LogJournal) Record(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}
	fields := log.Fields{
		"event_type": e.Type,
		"event_time": e.Time.Format(time.RFC3339),
	}
	for k, v := range e.Data {
		fields[k] = v
	}
	log.WithFields(fields).Info(e.Description)
}
