package service

import "context"

// Activity event kinds published after successful workflows.
const (
	ActivityInvitationSent       = "invitation.sent"
	ActivityContributionRecorded = "contribution.recorded"
	ActivityRSVPUpdated          = "rsvp.updated"
	ActivityEventDeleted         = "event.deleted"
)

// ActivityEvent is a best-effort audit record of a completed workflow.
// Publishing failures are logged and never surfaced to the user.
type ActivityEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	Kind      string  `json:"kind"`
	EventID   string  `json:"event_id,omitempty"`
	GiftID    string  `json:"gift_id,omitempty"`
	ProfileID string  `json:"profile_id,omitempty"`
	Email     string  `json:"email,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Status    string  `json:"status,omitempty"`
}

// EventPublisher defines the interface for publishing activity events to a
// message queue.
type EventPublisher interface {
	// PublishActivity publishes an activity event for async consumers.
	PublishActivity(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
