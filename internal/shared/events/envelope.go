package events

import "time"

// Envelope is the shared event shape published on the message bus.
type Envelope struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	SourceService  string    `json:"source_service"`
	OccurredAtUTC  time.Time `json:"occurred_at_utc"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	PayloadVersion int       `json:"payload_version"`
	Payload        any       `json:"payload"`
}

// Topics carried on the bus.
const (
	TopicUserRegistered = "users.registered"
	TopicOrderCreated   = "orders.created"
)
