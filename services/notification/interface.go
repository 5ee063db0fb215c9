package notification

import "context"

// Event classifies the booking lifecycle moments that trigger a push.
type Event string

const (
	EventBooked    Event = "booked"
	EventCancelled Event = "cancelled"
	EventReminder  Event = "reminder"
)

// NotificationService sends booking pushes to an owner. Fire-and-forget from
// the booking engine's perspective: failures surface as warnings, never as
// admission errors.
type NotificationService interface {
	Notify(ctx context.Context, ownerIdentity string, event Event, title, body string, data map[string]string) error
}
