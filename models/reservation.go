package models

import "time"

// ReservationStatus is the lifecycle state of a reservation. Transitions only
// move forward: pending -> confirmed, pending -> cancelled,
// confirmed -> cancelled. Cancelled is terminal.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// LiveStatuses are the statuses that occupy a window. Reservations in these
// states must be pairwise non-overlapping per resource class.
var LiveStatuses = []ReservationStatus{ReservationPending, ReservationConfirmed}

// Reservation is the durable booking record. Cancellation is a status change,
// never a delete; the ledger keeps the full audit history.
type Reservation struct {
	ID               string            `bson:"id" json:"id"`
	ResourceClass    ResourceClass     `bson:"resource_class" json:"resourceClass"`
	Window           TimeWindow        `bson:"window" json:"window"`
	SlotKey          string            `bson:"slot_key" json:"-"`
	Status           ReservationStatus `bson:"status" json:"status"`
	ConfirmationCode string            `bson:"confirmation_code" json:"confirmationCode"`
	OwnerIdentity    string            `bson:"owner_identity" json:"ownerIdentity"`
	PriceSnapshot    float64           `bson:"price_snapshot" json:"priceSnapshot"`
	Currency         string            `bson:"currency" json:"currency"`
	CreatedAt        time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time         `bson:"updated_at" json:"updatedAt"`
	ExternalEventRef string            `bson:"external_event_ref,omitempty" json:"externalEventRef,omitempty"`
	JoinLink         string            `bson:"join_link,omitempty" json:"joinLink,omitempty"`
	PaymentLinkURL   string            `bson:"payment_link_url,omitempty" json:"paymentLinkUrl,omitempty"`
}

// IsLive reports whether the reservation currently occupies its window.
func (r *Reservation) IsLive() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}
