package booking

import (
	"context"
	"time"

	scheduleRepo "github.com/joaquinperez028/landingPageNahuel-sub003/database/repository/schedule"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// Registry answers blocked-window questions over the recurring schedule. It
// recomputes from the repository on every call; edits are rare admin actions
// and callers cache the derived availability, not the blocks.
//
// Overlapping blocks for the same weekday may coexist; the registry exposes
// their union and never validates non-overlap among the blocks themselves.
type Registry struct {
	Repo scheduleRepo.ScheduleRepository
}

// NewRegistry constructs a Registry over the schedule repository.
func NewRegistry(repo scheduleRepo.ScheduleRepository) *Registry {
	return &Registry{Repo: repo}
}

// ActiveBlocksOn returns all active recurring blocks for day's weekday,
// across every resource class.
func (r *Registry) ActiveBlocksOn(ctx context.Context, day time.Time) ([]models.RecurringBlock, error) {
	return r.Repo.ActiveByWeekday(ctx, day.UTC().Weekday())
}

// BlockedWindowsFor materializes the active windows of class on a concrete
// day, ordered by start.
func (r *Registry) BlockedWindowsFor(ctx context.Context, day time.Time, class models.ResourceClass) ([]models.TimeWindow, error) {
	blocks, err := r.Repo.ActiveByWeekdayAndClass(ctx, day.UTC().Weekday(), class)
	if err != nil {
		return nil, err
	}
	windows := make([]models.TimeWindow, len(blocks))
	for i, b := range blocks {
		windows[i] = b.WindowOn(day)
	}
	return windows, nil
}

// IsBlocked reports whether window overlaps any active block of a different
// resource class on its day. Classes share one underlying calendar, so a
// foreign block excludes the window regardless of its own class's schedule.
func (r *Registry) IsBlocked(ctx context.Context, window models.TimeWindow, class models.ResourceClass) (bool, error) {
	blocks, err := r.ActiveBlocksOn(ctx, window.Start)
	if err != nil {
		return false, err
	}
	return blockedByOther(blocks, window, class), nil
}

// AlignedBlock resolves the exact-alignment rule for class-type services: it
// returns the active block of class whose materialized window equals window,
// or nil when none does.
func (r *Registry) AlignedBlock(ctx context.Context, window models.TimeWindow, class models.ResourceClass) (*models.RecurringBlock, error) {
	blocks, err := r.Repo.ActiveByWeekdayAndClass(ctx, window.Start.UTC().Weekday(), class)
	if err != nil {
		return nil, err
	}
	for i := range blocks {
		if blocks[i].WindowOn(window.Start).Equal(window) {
			return &blocks[i], nil
		}
	}
	return nil, nil
}

func blockedByOther(blocks []models.RecurringBlock, window models.TimeWindow, class models.ResourceClass) bool {
	for _, b := range blocks {
		if b.ResourceClass != class && b.WindowOn(window.Start).Overlaps(window) {
			return true
		}
	}
	return false
}

func hasAligned(blocks []models.RecurringBlock, window models.TimeWindow, class models.ResourceClass) bool {
	for _, b := range blocks {
		if b.ResourceClass == class && b.WindowOn(window.Start).Equal(window) {
			return true
		}
	}
	return false
}
