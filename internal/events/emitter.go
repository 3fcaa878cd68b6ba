package events

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Event is a single NDJSON progress record describing a trace lifecycle
// step (trace-start, module-done, trace-finished, batch-finished).
type Event struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Message   string                 `json:"message,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Emitter writes NDJSON events to an io.Writer safely across goroutines.
// A nil Emitter discards all events, so callers only construct one when
// progress output is wanted.
type Emitter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewEmitter returns an emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{writer: w}
}

// Emit serializes the event to JSON and appends a newline. Events without
// a timestamp are stamped at emit time.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}

	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	_, err = e.writer.Write(append(payload, '\n'))
	return err
}
