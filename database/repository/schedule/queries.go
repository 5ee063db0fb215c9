// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

func (r *mongoScheduleRepo) find(ctx context.Context, filter bson.M) ([]models.RecurringBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}, {Key: "start_minute", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.RecurringBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode schedule blocks: %w", err)
	}
	return blocks, nil
}

func (r *mongoScheduleRepo) ActiveByWeekday(ctx context.Context, weekday time.Weekday) ([]models.RecurringBlock, error) {
	return r.find(ctx, bson.M{"weekday": int(weekday), "active": true})
}

func (r *mongoScheduleRepo) ActiveByWeekdayAndClass(ctx context.Context, weekday time.Weekday, class models.ResourceClass) ([]models.RecurringBlock, error) {
	return r.find(ctx, bson.M{"weekday": int(weekday), "active": true, "resource_class": class})
}

func (r *mongoScheduleRepo) ListByClass(ctx context.Context, class models.ResourceClass) ([]models.RecurringBlock, error) {
	return r.find(ctx, bson.M{"resource_class": class})
}
