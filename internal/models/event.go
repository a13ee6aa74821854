package models

import "encoding/json"

// Event types published to the message broker.
const (
	EventUserRegistered = "user.registered"
	EventUserUpdated    = "user.updated"
	EventSessionLogin   = "session.login"
	EventSessionLogout  = "session.logout"
	EventWorkersHired   = "workers.hired"
)

// Event is a domain event describing a change to the directory or session.
type Event struct {
	EventID   string          `json:"event_id"`          // EventID is a unique identifier for the event.
	Type      string          `json:"type"`              // Type is one of the Event* constants.
	UserID    int             `json:"user_id,omitempty"` // UserID is the subject of the event, if any.
	Timestamp int64           `json:"timestamp"`         // Timestamp is the Unix time (seconds) the event occurred.
	Payload   json.RawMessage `json:"payload,omitempty"` // Payload carries the event-specific body.
}
