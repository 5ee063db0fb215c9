package models

import "time"

// RecurringBlock is a weekly-recurring committed window: either the scheduled
// time of a class-type service, or time carved out of the shared calendar
// that excludes other services. Blocks are created and edited by the admin
// tooling and are read-only to the booking engine. Deactivation is a soft
// delete; historical reservations keep referencing the block.
type RecurringBlock struct {
	ID              string        `bson:"id" json:"id"`
	Weekday         time.Weekday  `bson:"weekday" json:"weekday"`
	StartMinute     int           `bson:"start_minute" json:"startMinute"` // minutes from midnight UTC
	DurationMinutes int           `bson:"duration_minutes" json:"durationMinutes"`
	ResourceClass   ResourceClass `bson:"resource_class" json:"resourceClass"`
	Active          bool          `bson:"active" json:"active"`
	Note            string        `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updatedAt"`
}

// WindowOn materializes the block on a concrete calendar day. The day's
// weekday is not checked here; callers select blocks by weekday first.
func (b RecurringBlock) WindowOn(day time.Time) TimeWindow {
	day = day.UTC()
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := midnight.Add(time.Duration(b.StartMinute) * time.Minute)
	return TimeWindow{Start: start, End: start.Add(time.Duration(b.DurationMinutes) * time.Minute)}
}
