package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// GetAvailability returns the offerable slots per day for class between from
// and to (inclusive), served from the availability cache when a fresh entry
// exists. The cache is a read optimization only; admission never trusts it.
//
// The generation is read once, before generating: a payload computed here is
// stored under that same generation, so a concurrent booking's Invalidate
// between our miss and our Set orphans the write instead of letting it serve
// the pre-booking view as fresh.
func (svc *DefaultBookingService) GetAvailability(ctx context.Context, class models.ResourceClass, from, to time.Time) ([]models.DayAvailability, error) {
	days, gen, ok := svc.Cache.Get(ctx, class, from, to)
	if ok {
		return days, nil
	}

	days, err := svc.Generate(ctx, class, from, to, svc.now())
	if err != nil {
		return nil, err
	}

	svc.Cache.Set(ctx, class, gen, from, to, days)
	return days, nil
}

// Generate computes the offerable slots for class on each day between from
// and to (inclusive). Deterministic given identical inputs: the only clock it
// sees is the caller-supplied now, used to drop windows that already started.
// Days with zero offerable slots are omitted entirely.
func (svc *DefaultBookingService) Generate(ctx context.Context, class models.ResourceClass, from, to time.Time, now time.Time) ([]models.DayAvailability, error) {
	cfg, ok := svc.Catalog.Get(class)
	if !ok {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown resource class %q", class)}
	}

	first := dateOf(from)
	last := dateOf(to)
	if last.Before(first) {
		return nil, &ValidationError{Reason: "date range end precedes start"}
	}
	if horizon := dateOf(now).AddDate(0, 0, svc.Hours.HorizonDays); last.After(horizon) {
		last = horizon
	}

	var days []models.DayAvailability
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		slots, err := svc.generateDay(ctx, cfg, day, now)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slots for %s: %w", day.Format("2006-01-02"), err)
		}
		if len(slots) == 0 {
			continue
		}
		days = append(days, models.DayAvailability{
			Date:  day.Format("2006-01-02"),
			Slots: slots,
		})
	}
	return days, nil
}

// generateDay walks the candidate grid for one day and drops every candidate
// that is misaligned, blocked by a foreign class, already reserved, or
// already started.
func (svc *DefaultBookingService) generateDay(ctx context.Context, cfg models.ClassConfig, day time.Time, now time.Time) ([]models.OfferableSlot, error) {
	blocks, err := svc.Registry.ActiveBlocksOn(ctx, day)
	if err != nil {
		return nil, err
	}

	open := day.Add(time.Duration(svc.Hours.OpenMinute) * time.Minute)
	close := day.Add(time.Duration(svc.Hours.CloseMinute) * time.Minute)
	reserved, err := svc.Repo.LiveInRange(ctx, cfg.Class, models.TimeWindow{Start: open, End: close})
	if err != nil {
		return nil, err
	}

	duration := time.Duration(cfg.DurationMinutes) * time.Minute
	step := time.Duration(svc.Hours.GranularityMinutes) * time.Minute

	var slots []models.OfferableSlot
candidates:
	for start := open; !start.Add(duration).After(close); start = start.Add(step) {
		window := models.NewTimeWindow(start, duration)

		if !window.Start.After(now) {
			continue
		}
		if cfg.RequiresBlockAlignment && !hasAligned(blocks, window, cfg.Class) {
			continue
		}
		if blockedByOther(blocks, window, cfg.Class) {
			continue
		}
		for _, r := range reserved {
			if r.Window.Overlaps(window) {
				continue candidates
			}
		}

		quote, err := svc.Pricing.PriceFor(ctx, cfg.Class, window)
		if err != nil {
			return nil, fmt.Errorf("pricing failed for %s: %w", window, err)
		}

		slots = append(slots, models.OfferableSlot{
			Date:            window.Date(),
			Window:          window,
			ResourceClass:   cfg.Class,
			Price:           quote.Amount,
			Currency:        quote.Currency,
			DurationMinutes: cfg.DurationMinutes,
		})
	}
	return slots, nil
}

// dateOf truncates t to its UTC calendar day.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
