// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joaquinperez028/landingPageNahuel-sub003/config"
	"github.com/joaquinperez028/landingPageNahuel-sub003/database"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// ScheduleRepository defines data access for the recurring blocked-window
// registry. The booking engine only reads; writes come from the admin
// endpoints.
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*models.RecurringBlock, error)
	ActiveByWeekday(ctx context.Context, weekday time.Weekday) ([]models.RecurringBlock, error)
	ActiveByWeekdayAndClass(ctx context.Context, weekday time.Weekday, class models.ResourceClass) ([]models.RecurringBlock, error)
	ListByClass(ctx context.Context, class models.ResourceClass) ([]models.RecurringBlock, error)
	Upsert(ctx context.Context, block *models.RecurringBlock) error
	Deactivate(ctx context.Context, id string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a MongoDB-backed ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoScheduleRepo{
		coll: db.Collection("schedule_blocks"),
	}
}
