package models

import "time"

// Account event types published to Kafka.
const (
	EventUserRegistered = "user_registered"
	EventUserUpdated    = "user_updated"
	EventUserDeleted    = "user_deleted"
)

// AccountEvent describes a user lifecycle change.
type AccountEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}
