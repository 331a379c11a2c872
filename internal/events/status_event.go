package events

import (
	"time"

	"github.com/google/uuid"

	"promptmail/internal/models"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Stage is where a submission currently is.
type Stage string

const (
	StageRequesting Stage = "requesting"
	StageReceived   Stage = "received"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
	StageRejected   Stage = "rejected"
)

const (
	ExchangeStatus = "events:exchange:status"
	ExchangeDone   = "events:exchange:done"
)

// StatusEvent is the payload pushed from the background worker to a UI
// shell. Response is only set on StageReceived.
type StatusEvent struct {
	ID        string          `json:"id"`
	Stage     Stage           `json:"stage"`
	Type      EventType       `json:"type"`
	Category  models.Category `json:"category,omitempty"`
	Message   string          `json:"message"`
	Response  string          `json:"response,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Terminal reports whether no further events follow for this submission.
func (e StatusEvent) Terminal() bool {
	return e.Stage == StageDone || e.Stage == StageFailed || e.Stage == StageRejected
}

// Sink receives status events. Implementations must not touch UI objects
// directly; they hand the event to the UI's own thread or loop.
type Sink func(StatusEvent)

func CreateStatusEvent(stage Stage, eventType EventType, message string) StatusEvent {
	return StatusEvent{
		ID:        uuid.NewString(),
		Stage:     stage,
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewProgress creates an info event for an intermediate stage.
func NewProgress(stage Stage, message string) StatusEvent {
	return CreateStatusEvent(stage, EventInfo, message)
}

// NewReceived creates the event carrying the generated response.
func NewReceived(message, response string) StatusEvent {
	evt := CreateStatusEvent(StageReceived, EventInfo, message)
	evt.Response = response
	return evt
}

// NewDone creates the success event.
func NewDone(message string) StatusEvent {
	evt := CreateStatusEvent(StageDone, EventSuccess, message)
	evt.Category = models.CategoryOK
	return evt
}

// NewFailure creates an error event for stage (failed or rejected).
func NewFailure(stage Stage, category models.Category, message string) StatusEvent {
	evt := CreateStatusEvent(stage, EventError, message)
	evt.Category = category
	return evt
}
