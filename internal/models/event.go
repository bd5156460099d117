package models

// Date lifecycle operations published to Kafka.
const (
	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"
)

// DateEvent represents a change to a date record, including who made it and when.
type DateEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the change happened.
	DateID    int64  `json:"date_id"`   // DateID is the identifier of the affected date.
	UserID    int64  `json:"user_id"`   // UserID is the identifier of the user who made the change.
	Operation string `json:"operation"` // Operation is one of "created", "updated" or "deleted".
}
