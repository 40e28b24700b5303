package models

// AuditEvent is the payload published to Kafka for privileged mutations.
type AuditEvent struct {
	EventID   string `json:"event_id"`         // Unique event id
	Timestamp int64  `json:"timestamp"`        // Unix time of the action
	Action    string `json:"action"`           // e.g. "user.admin_changed", "book.created"
	ActorID   string `json:"actor_id"`         // User id of the admin performing the action
	Subject   string `json:"subject"`          // Id of the affected record
	Detail    string `json:"detail,omitempty"` // Optional human-readable detail
}
