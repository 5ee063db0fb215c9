package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// ReminderScheduler enqueues session reminders on the asynq queue, to fire a
// configured lead time before the session starts.
type ReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// NewReminderScheduler builds a scheduler over the shared asynq client.
func NewReminderScheduler(client *asynq.Client, lead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{Client: client, Lead: lead}
}

// ScheduleReminder enqueues the reminder task for res. Reservations starting
// inside the lead window get their reminder immediately.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, res *models.Reservation) error {
	payload := models.ReminderPayload{
		ReservationID: res.ID,
		ResourceClass: res.ResourceClass,
		OwnerIdentity: res.OwnerIdentity,
		StartsAt:      res.Window.Start,
		Title:         "Your session starts soon",
		Body:          fmt.Sprintf("Your session begins at %s. Code: %s.", res.Window.Start.Format("15:04 MST"), res.ConfirmationCode),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	fireAt := res.Window.Start.Add(-s.Lead)
	task := asynq.NewTask(TypeSessionReminder, raw)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
