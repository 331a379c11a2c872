package mocks

import (
	"sync"

	"promptmail/internal/events"
)

// EventRecorder collects status events from any goroutine.
type EventRecorder struct {
	mu     sync.Mutex
	events []events.StatusEvent
}

func (r *EventRecorder) Sink(evt events.StatusEvent) {
	r.mu.Lock()
	r.events = append(r.events, evt)
	r.mu.Unlock()
}

func (r *EventRecorder) Events() []events.StatusEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.StatusEvent(nil), r.events...)
}

func (r *EventRecorder) Stages() []events.Stage {
	evts := r.Events()
	stages := make([]events.Stage, 0, len(evts))
	for _, e := range evts {
		stages = append(stages, e.Stage)
	}
	return stages
}

func (r *EventRecorder) Last() (events.StatusEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return events.StatusEvent{}, false
	}
	return r.events[len(r.events)-1], true
}
