package models

import "time"

// BookingRequest is the payload for POST /api/bookings. End is optional; when
// present it must match the class's configured session duration exactly.
type BookingRequest struct {
	ResourceClass ResourceClass `json:"resourceClass" binding:"required"`
	Start         time.Time     `json:"start" binding:"required"`
	End           *time.Time    `json:"end,omitempty"`
	OwnerIdentity string        `json:"ownerIdentity,omitempty"`
}

// BookingResult is what a successful admission returns: the committed
// reservation plus warnings from best-effort side effects that failed
// (calendar event, payment link, notification). Warnings never imply
// rollback; the window is held regardless.
type BookingResult struct {
	Reservation *Reservation `json:"reservation"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// BookingResponse is the wire shape for a successful admission.
type BookingResponse struct {
	ReservationID    string            `json:"reservationId"`
	ConfirmationCode string            `json:"confirmationCode"`
	Status           ReservationStatus `json:"status"`
	Window           TimeWindow        `json:"window"`
	PriceSnapshot    float64           `json:"priceSnapshot"`
	Currency         string            `json:"currency"`
	JoinLink         string            `json:"joinLink,omitempty"`
	PaymentLinkURL   string            `json:"paymentLinkUrl,omitempty"`
	Warnings         []string          `json:"warnings,omitempty"`
}

// ReminderPayload is the asynq task body for session reminder pushes.
type ReminderPayload struct {
	ReservationID string        `json:"reservationId"`
	ResourceClass ResourceClass `json:"resourceClass"`
	OwnerIdentity string        `json:"ownerIdentity"`
	StartsAt      time.Time     `json:"startsAt"`
	Title         string        `json:"title"`
	Body          string        `json:"body"`
}
