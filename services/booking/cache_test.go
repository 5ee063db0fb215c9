package booking

import (
	"context"
	"testing"
	"time"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

func newTestCache() *AvailabilityCache {
	return &AvailabilityCache{Client: newMemRedis(), TTL: time.Minute}
}

func sampleDays(hour int) []models.DayAvailability {
	window := models.NewTimeWindow(testSaturday.Add(time.Duration(hour)*time.Hour), time.Hour)
	return []models.DayAvailability{{
		Date: window.Date(),
		Slots: []models.OfferableSlot{{
			Date:            window.Date(),
			Window:          window,
			ResourceClass:   models.ClassAdvisoryConsult,
			Price:           120,
			Currency:        "USD",
			DurationMinutes: 60,
		}},
	}}
}

func hasSlotAt(days []models.DayAvailability, hour int) bool {
	for _, day := range days {
		for _, slot := range day.Slots {
			if slot.Window.Start.Hour() == hour {
				return true
			}
		}
	}
	return false
}

func TestAvailabilityCacheRoundTrip(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()
	class := models.ClassAdvisoryConsult

	_, gen, ok := cache.Get(ctx, class, testSaturday, testSaturday)
	if ok {
		t.Fatal("empty cache reported a hit")
	}
	if gen != 0 {
		t.Fatalf("fresh class generation = %d, want 0", gen)
	}

	cache.Set(ctx, class, gen, testSaturday, testSaturday, sampleDays(16))

	days, _, ok := cache.Get(ctx, class, testSaturday, testSaturday)
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if len(days) != 1 || len(days[0].Slots) != 1 {
		t.Fatalf("payload shape changed through the cache: %+v", days)
	}
	if !hasSlotAt(days, 16) {
		t.Errorf("cached payload lost the 16:00 slot: %+v", days)
	}

	// A different date range is a distinct key.
	if _, _, ok := cache.Get(ctx, class, testSaturday, testSaturday.AddDate(0, 0, 7)); ok {
		t.Error("hit for a range that was never cached")
	}
}

func TestAvailabilityCacheInvalidateOrphansEntries(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()
	class := models.ClassAdvisoryConsult

	_, gen, _ := cache.Get(ctx, class, testSaturday, testSaturday)
	cache.Set(ctx, class, gen, testSaturday, testSaturday, sampleDays(16))
	if _, _, ok := cache.Get(ctx, class, testSaturday, testSaturday); !ok {
		t.Fatal("expected a hit before invalidation")
	}

	if err := cache.Invalidate(ctx, class); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	_, gen, ok := cache.Get(ctx, class, testSaturday, testSaturday)
	if ok {
		t.Fatal("hit served after invalidation")
	}
	if gen != 1 {
		t.Errorf("generation after one INCR = %d, want 1", gen)
	}

	// Other classes keep their own counters.
	if _, other, _ := cache.Get(ctx, models.ClassTrainingSwing, testSaturday, testSaturday); other != 0 {
		t.Errorf("unrelated class generation = %d, want 0", other)
	}
}

func TestAvailabilityCacheLateWriteUnderOldGenerationNeverServed(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()
	class := models.ClassAdvisoryConsult

	// A reader misses and observes generation 0, then a booking invalidates
	// before the reader finishes computing its payload.
	_, gen, _ := cache.Get(ctx, class, testSaturday, testSaturday)
	if err := cache.Invalidate(ctx, class); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	// The late write lands under the orphaned generation.
	cache.Set(ctx, class, gen, testSaturday, testSaturday, sampleDays(16))

	if days, _, ok := cache.Get(ctx, class, testSaturday, testSaturday); ok {
		t.Fatalf("stale pre-invalidation payload served as fresh: %+v", days)
	}
}

func TestGetAvailabilityStalePayloadNotResurrectedByLateWrite(t *testing.T) {
	svc := newTestService(newFakeReservationRepo(), testBlocks())
	svc.Cache = newTestCache()
	ctx := context.Background()
	class := models.ClassAdvisoryConsult

	// Reader misses and starts generating the pre-booking view.
	_, gen, ok := svc.Cache.Get(ctx, class, testSaturday, testSaturday)
	if ok {
		t.Fatal("empty cache reported a hit")
	}
	preBooking, err := svc.Generate(ctx, class, testSaturday, testSaturday, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !hasSlotAt(preBooking, 16) {
		t.Fatal("expected the 16:00 slot before booking")
	}

	// A booking commits and invalidates while the reader is still working.
	if _, err := svc.Book(ctx, models.BookingRequest{
		ResourceClass: class,
		Start:         testSaturday.Add(16 * time.Hour),
		OwnerIdentity: "user-1",
	}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	// The reader's late write must not be observable.
	svc.Cache.Set(ctx, class, gen, testSaturday, testSaturday, preBooking)

	days, err := svc.GetAvailability(ctx, class, testSaturday, testSaturday)
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if hasSlotAt(days, 16) {
		t.Fatalf("booked 16:00 slot still offered after invalidation: %+v", days)
	}
}

func TestGetAvailabilityCachesAndInvalidatesOnBooking(t *testing.T) {
	svc := newTestService(newFakeReservationRepo(), testBlocks())
	svc.Cache = newTestCache()
	ctx := context.Background()
	class := models.ClassAdvisoryConsult

	first, err := svc.GetAvailability(ctx, class, testSaturday, testSaturday)
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if !hasSlotAt(first, 16) {
		t.Fatal("expected the 16:00 slot before booking")
	}
	if _, _, ok := svc.Cache.Get(ctx, class, testSaturday, testSaturday); !ok {
		t.Fatal("availability was not cached")
	}

	if _, err := svc.Book(ctx, models.BookingRequest{
		ResourceClass: class,
		Start:         testSaturday.Add(16 * time.Hour),
		OwnerIdentity: "user-1",
	}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	after, err := svc.GetAvailability(ctx, class, testSaturday, testSaturday)
	if err != nil {
		t.Fatalf("GetAvailability after booking: %v", err)
	}
	if hasSlotAt(after, 16) {
		t.Error("booked slot still offered after invalidation")
	}
}
