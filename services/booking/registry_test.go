package booking

import (
	"context"
	"testing"
	"time"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// Saturday used throughout the schedule tests.
var testSaturday = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

func testBlocks() []models.RecurringBlock {
	return []models.RecurringBlock{
		{ID: "swing-sat", Weekday: time.Saturday, StartMinute: 10 * 60, DurationMinutes: 60, ResourceClass: models.ClassTrainingSwing, Active: true},
		{ID: "advanced-sat", Weekday: time.Saturday, StartMinute: 14 * 60, DurationMinutes: 90, ResourceClass: models.ClassTrainingAdvanced, Active: true},
		{ID: "swing-sat-old", Weekday: time.Saturday, StartMinute: 12 * 60, DurationMinutes: 60, ResourceClass: models.ClassTrainingSwing, Active: false},
		{ID: "swing-mon", Weekday: time.Monday, StartMinute: 18 * 60, DurationMinutes: 60, ResourceClass: models.ClassTrainingSwing, Active: true},
	}
}

func newTestRegistry() *Registry {
	return NewRegistry(&fakeScheduleRepo{blocks: testBlocks()})
}

func TestActiveBlocksOnFiltersWeekdayAndActive(t *testing.T) {
	reg := newTestRegistry()

	blocks, err := reg.ActiveBlocksOn(context.Background(), testSaturday)
	if err != nil {
		t.Fatalf("ActiveBlocksOn: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	for _, b := range blocks {
		if !b.Active {
			t.Errorf("inactive block %s leaked through", b.ID)
		}
		if b.Weekday != time.Saturday {
			t.Errorf("block %s has weekday %v, want Saturday", b.ID, b.Weekday)
		}
	}
}

func TestBlockedWindowsForMaterializesOnDay(t *testing.T) {
	reg := newTestRegistry()

	windows, err := reg.BlockedWindowsFor(context.Background(), testSaturday, models.ClassTrainingSwing)
	if err != nil {
		t.Fatalf("BlockedWindowsFor: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(windows))
	}
	want := models.NewTimeWindow(testSaturday.Add(10*time.Hour), time.Hour)
	if !windows[0].Equal(want) {
		t.Errorf("window = %s, want %s", windows[0], want)
	}
}

func TestIsBlockedExcludesForeignClassesOnly(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()

	tests := []struct {
		name   string
		window models.TimeWindow
		class  models.ResourceClass
		want   bool
	}{
		{
			name:   "advisory overlapping a training block is excluded",
			window: models.NewTimeWindow(testSaturday.Add(10*time.Hour), time.Hour),
			class:  models.ClassAdvisoryConsult,
			want:   true,
		},
		{
			name:   "partial overlap with a foreign block is excluded",
			window: models.NewTimeWindow(testSaturday.Add(10*time.Hour+30*time.Minute), time.Hour),
			class:  models.ClassAdvisoryConsult,
			want:   true,
		},
		{
			name:   "own-class block does not exclude",
			window: models.NewTimeWindow(testSaturday.Add(10*time.Hour), time.Hour),
			class:  models.ClassTrainingSwing,
			want:   false,
		},
		{
			name:   "touching a foreign block endpoint does not exclude",
			window: models.NewTimeWindow(testSaturday.Add(11*time.Hour), time.Hour),
			class:  models.ClassAdvisoryConsult,
			want:   false,
		},
		{
			name:   "inactive blocks do not exclude",
			window: models.NewTimeWindow(testSaturday.Add(12*time.Hour), time.Hour),
			class:  models.ClassAdvisoryConsult,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.IsBlocked(ctx, tt.window, tt.class)
			if err != nil {
				t.Fatalf("IsBlocked: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsBlocked(%s, %s) = %v, want %v", tt.window, tt.class, got, tt.want)
			}
		})
	}
}

func TestAlignedBlockRequiresExactWindowMatch(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()

	aligned, err := reg.AlignedBlock(ctx, models.NewTimeWindow(testSaturday.Add(10*time.Hour), time.Hour), models.ClassTrainingSwing)
	if err != nil {
		t.Fatalf("AlignedBlock: %v", err)
	}
	if aligned == nil || aligned.ID != "swing-sat" {
		t.Fatalf("got %+v, want swing-sat", aligned)
	}

	// Same window, wrong class.
	aligned, err = reg.AlignedBlock(ctx, models.NewTimeWindow(testSaturday.Add(10*time.Hour), time.Hour), models.ClassTrainingAdvanced)
	if err != nil {
		t.Fatalf("AlignedBlock: %v", err)
	}
	if aligned != nil {
		t.Errorf("wrong-class window should not align, got %+v", aligned)
	}

	// Right class, shifted start.
	aligned, err = reg.AlignedBlock(ctx, models.NewTimeWindow(testSaturday.Add(9*time.Hour), time.Hour), models.ClassTrainingSwing)
	if err != nil {
		t.Fatalf("AlignedBlock: %v", err)
	}
	if aligned != nil {
		t.Errorf("shifted window should not align, got %+v", aligned)
	}

	// Right start, wrong length.
	aligned, err = reg.AlignedBlock(ctx, models.NewTimeWindow(testSaturday.Add(10*time.Hour), 90*time.Minute), models.ClassTrainingSwing)
	if err != nil {
		t.Fatalf("AlignedBlock: %v", err)
	}
	if aligned != nil {
		t.Errorf("longer window should not align, got %+v", aligned)
	}
}
