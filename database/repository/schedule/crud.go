// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

func (r *mongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.RecurringBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var block models.RecurringBlock
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&block); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule block %s: %w", id, err)
	}
	return &block, nil
}

// Upsert creates the block or replaces an existing one with the same ID. New
// blocks get a generated ID and are active by default.
func (r *mongoScheduleRepo) Upsert(ctx context.Context, block *models.RecurringBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	if block.ID == "" {
		block.ID = uuid.New().String()
		block.Active = true
		block.CreatedAt = now
	}
	block.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": block.ID}, block, opts); err != nil {
		return fmt.Errorf("failed to upsert schedule block %s: %w", block.ID, err)
	}
	return nil
}

// Deactivate soft-deletes a block. The document stays in place so historical
// reservations keep a valid reference.
func (r *mongoScheduleRepo) Deactivate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": false, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate schedule block %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
