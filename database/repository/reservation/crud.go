// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

func (repo *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	return &res, nil
}

// Confirm transitions pending -> confirmed.
func (repo *MongoReservationRepo) Confirm(ctx context.Context, id string) (*models.Reservation, error) {
	return repo.transition(ctx, id,
		bson.M{"id": id, "status": models.ReservationPending},
		models.ReservationConfirmed, ErrNotConfirmable)
}

// Cancel transitions a live reservation to cancelled and frees its window.
// The guarded update only matches live statuses, so cancelling is
// forward-only: once a window has been freed and re-claimed by another
// reservation, no late retry of this call can take the new claim back.
func (repo *MongoReservationRepo) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	return repo.transition(ctx, id,
		bson.M{"id": id, "status": bson.M{"$in": models.LiveStatuses}},
		models.ReservationCancelled, ErrNotCancellable)
}

func (repo *MongoReservationRepo) transition(ctx context.Context, id string, filter bson.M, to models.ReservationStatus, conflictErr error) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var res models.Reservation
	err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&res)
	if err == nil {
		return &res, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update reservation %s: %w", id, err)
	}

	// No document matched the guarded filter: distinguish a missing
	// reservation from one in the wrong state.
	if _, getErr := repo.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, conflictErr
}

// AttachSideEffectRefs records the external references produced by
// post-admission side effects (calendar event, join link, payment link).
func (repo *MongoReservationRepo) AttachSideEffectRefs(ctx context.Context, id, eventRef, joinLink, paymentLink string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if eventRef != "" {
		set["external_event_ref"] = eventRef
	}
	if joinLink != "" {
		set["join_link"] = joinLink
	}
	if paymentLink != "" {
		set["payment_link_url"] = paymentLink
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to attach side-effect refs to reservation %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
