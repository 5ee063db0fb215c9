// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joaquinperez028/landingPageNahuel-sub003/config"
	"github.com/joaquinperez028/landingPageNahuel-sub003/database"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

var (
	// ErrNotFound is returned when no reservation matches the given ID.
	ErrNotFound = errors.New("reservation not found")
	// ErrNotCancellable is returned when the reservation exists but is
	// already cancelled. Cancellation only moves forward; a finished cancel
	// is never undone.
	ErrNotCancellable = errors.New("reservation is already cancelled")
	// ErrNotConfirmable is returned when the reservation is not pending.
	ErrNotConfirmable = errors.New("reservation is not pending")
)

// OverlapError reports the live reservations colliding with a requested
// window. It is the structured conflict result of TryReserve: callers get
// the overlapping windows back, never a bare boolean.
type OverlapError struct {
	ResourceClass models.ResourceClass
	Requested     models.TimeWindow
	Conflicting   []models.Reservation
}

func (e *OverlapError) Error() string {
	windows := make([]string, len(e.Conflicting))
	for i, r := range e.Conflicting {
		windows[i] = r.Window.String()
	}
	return fmt.Sprintf("window %s for %s overlaps existing reservation(s) %s",
		e.Requested, e.ResourceClass, strings.Join(windows, ", "))
}

// ReservationRepository is the durable reservation ledger. TryReserve is the
// only write path that admits a new reservation; it is atomic with respect to
// concurrent callers on the same resource class.
type ReservationRepository interface {
	TryReserve(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	Confirm(ctx context.Context, id string) (*models.Reservation, error)
	Cancel(ctx context.Context, id string) (*models.Reservation, error)
	AttachSideEffectRefs(ctx context.Context, id, eventRef, joinLink, paymentLink string) error
	LiveOverlapping(ctx context.Context, class models.ResourceClass, window models.TimeWindow) ([]models.Reservation, error)
	LiveInRange(ctx context.Context, class models.ResourceClass, rangeWindow models.TimeWindow) ([]models.Reservation, error)
}

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a MongoDB-backed ReservationRepository.
func NewMongoReservationRepo() *MongoReservationRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
