package shared

// Asynq task types and queues.
const (
	TypeCreateScheduledPost = "post:create_scheduled"

	QueueDefault = "default"
)
