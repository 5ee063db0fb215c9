// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// liveOverlapping runs the half-open overlap query against live reservations:
// existing.start < window.end AND existing.end > window.start.
func (repo *MongoReservationRepo) liveOverlapping(ctx context.Context, class models.ResourceClass, window models.TimeWindow) ([]models.Reservation, error) {
	filter := bson.M{
		"resource_class": class,
		"status":         bson.M{"$in": models.LiveStatuses},
		"window.start":   bson.M{"$lt": window.End},
		"window.end":     bson.M{"$gt": window.Start},
	}

	opts := options.Find().SetSort(bson.D{{Key: "window.start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
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

// LiveOverlapping returns the live reservations overlapping window for class.
func (repo *MongoReservationRepo) LiveOverlapping(ctx context.Context, class models.ResourceClass, window models.TimeWindow) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := repo.liveOverlapping(ctx, class, window)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}
	return out, nil
}

// LiveInRange returns live reservations for class whose windows intersect
// rangeWindow, ordered by start. Used by the slot generator to exclude
// already-claimed windows.
func (repo *MongoReservationRepo) LiveInRange(ctx context.Context, class models.ResourceClass, rangeWindow models.TimeWindow) ([]models.Reservation, error) {
	return repo.LiveOverlapping(ctx, class, rangeWindow)
}
