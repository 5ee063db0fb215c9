package booking

import (
	"context"
	"time"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// BookingService is the public surface of the booking engine.
type BookingService interface {
	// GetAvailability returns the offerable slots per day for class between
	// from and to (inclusive), served from cache when fresh.
	GetAvailability(ctx context.Context, class models.ResourceClass, from, to time.Time) ([]models.DayAvailability, error)
	// Book validates and atomically admits a reservation for the requested
	// window. Side-effect failures come back as warnings on the result.
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
	// Cancel transitions a live reservation to cancelled and frees its window.
	Cancel(ctx context.Context, reservationID string) (*models.Reservation, error)
	// GetReservation fetches a reservation by ID.
	GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error)
}

// PaymentLinkHandler issues a payment link for an admitted reservation.
// Best-effort: a failure is surfaced as a warning, never a rollback.
type PaymentLinkHandler interface {
	CreatePaymentLink(ctx context.Context, res *models.Reservation) (string, error)
}

// ReminderScheduler enqueues the session reminder for a confirmed
// reservation.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, res *models.Reservation) error
}
