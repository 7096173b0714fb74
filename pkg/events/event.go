package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTE_TRASHED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used across the app.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewItemEvent builds the activity event emitted whenever a note or todo
// changes state. itemType is "note" or "todo".
func NewItemEvent(eventType, itemType string, itemId, userId uuid.UUID) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"item_type": itemType,
			"item_id":   itemId.String(),
			"user_id":   userId.String(),
		},
		OccurredAt: time.Now(),
	}
}
