// File: database/repository/reservation/transaction.go
package reservationRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// TryReserve atomically admits a reservation: the overlap scan and the insert
// run inside one MongoDB session transaction, so two concurrent callers
// requesting overlapping windows can never both pass the check. The partial
// unique index on (resource_class, slot_key) backs the transaction as a
// second line of defense for granularity-aligned windows.
//
// On overlap the returned error is an *OverlapError naming the colliding
// reservations. The caller's ctx deadline bounds the whole transaction.
func (repo *MongoReservationRepo) TryReserve(ctx context.Context, res *models.Reservation) error {
	if res.SlotKey == "" {
		res.SlotKey = res.Window.SlotKey()
	}

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		conflicting, err := repo.liveOverlapping(sc, res.ResourceClass, res.Window)
		if err != nil {
			return fmt.Errorf("overlap scan failed: %w", err)
		}
		if len(conflicting) > 0 {
			return &OverlapError{
				ResourceClass: res.ResourceClass,
				Requested:     res.Window,
				Conflicting:   conflicting,
			}
		}

		if _, err := repo.coll.InsertOne(sc, res); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// Lost the race against a writer outside this transaction's
				// snapshot; resolve the winner for the conflict report.
				winners, scanErr := repo.liveBySlotKey(sc, res.ResourceClass, res.SlotKey)
				if scanErr != nil || len(winners) == 0 {
					return &OverlapError{ResourceClass: res.ResourceClass, Requested: res.Window}
				}
				return &OverlapError{
					ResourceClass: res.ResourceClass,
					Requested:     res.Window,
					Conflicting:   winners,
				}
			}
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	var txnErr error
	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			txnErr = err
			return nil
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return txnErr
}

func (repo *MongoReservationRepo) liveBySlotKey(ctx context.Context, class models.ResourceClass, slotKey string) ([]models.Reservation, error) {
	filter := bson.M{
		"resource_class": class,
		"slot_key":       slotKey,
		"status":         bson.M{"$in": models.LiveStatuses},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
