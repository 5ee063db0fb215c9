// File: database/repository/reservation/indexes.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// EnsureIndexes creates the indexes on the reservations collection. The
// partial unique index on (resource_class, slot_key) only covers live
// statuses: cancelled reservations fall out of it, which is what frees a
// window for re-booking without deleting the audit record.
func (repo *MongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	liveFilter := bson.M{"status": bson.M{"$in": models.LiveStatuses}}

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "resource_class", Value: 1}, {Key: "slot_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(liveFilter).
				SetName("unique_live_slot"),
		},
		{
			Keys:    bson.D{{Key: "resource_class", Value: 1}, {Key: "status", Value: 1}, {Key: "window.start", Value: 1}},
			Options: options.Index().SetName("class_status_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "confirmation_code", Value: 1}},
			Options: options.Index().SetName("confirmation_code_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
