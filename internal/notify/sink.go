package notify

import (
	"io"
	"log"
	"strings"
)

// Sink receives notifications. Implementations must not call back into the
// component that emitted the event.
type Sink interface {
	Notify(evt Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(evt Event)

// Notify calls f(evt).
func (f SinkFunc) Notify(evt Event) { f(evt) }

// Discard drops every notification.
var Discard Sink = SinkFunc(func(Event) {})

// LogSink writes each notification as one log line.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink writing to logger. A nil logger discards output.
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LogSink{logger: logger}
}

// Notify logs the event type and its message on a single line.
func (s *LogSink) Notify(evt Event) {
	s.logger.Printf("[%s] %s", evt.Type(), strings.ReplaceAll(evt.Message(), "\n", " | "))
}

// Recorder keeps every notification in memory, in arrival order.
type Recorder struct {
	Events []Event
}

// Notify appends evt.
func (r *Recorder) Notify(evt Event) {
	r.Events = append(r.Events, evt)
}

// Types returns the recorded event types in order.
func (r *Recorder) Types() []EventType {
	types := make([]EventType, len(r.Events))
	for i, evt := range r.Events {
		types[i] = evt.Type()
	}
	return types
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// Fanout delivers each notification to every sink in order.
type Fanout []Sink

// Notify forwards evt to each sink.
func (f Fanout) Notify(evt Event) {
	for _, s := range f {
		s.Notify(evt)
	}
}
