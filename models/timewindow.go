package models

import (
	"fmt"
	"time"
)

// TimeWindow is a half-open interval [Start, End) in UTC.
type TimeWindow struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// NewTimeWindow builds the window [start, start+d) in UTC.
func NewTimeWindow(start time.Time, d time.Duration) TimeWindow {
	s := start.UTC()
	return TimeWindow{Start: s, End: s.Add(d)}
}

// Valid reports whether the window is well-formed (Start strictly before End).
func (w TimeWindow) Valid() bool {
	return w.Start.Before(w.End)
}

// Overlaps reports whether two half-open windows share any instant.
// Touching endpoints ([10:00,11:00) and [11:00,12:00)) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Contains reports whether other lies entirely within w.
func (w TimeWindow) Contains(other TimeWindow) bool {
	return !other.Start.Before(w.Start) && !other.End.After(w.End)
}

// Shift returns the window moved forward by d (negative d moves it back).
func (w TimeWindow) Shift(d time.Duration) TimeWindow {
	return TimeWindow{Start: w.Start.Add(d), End: w.End.Add(d)}
}

// Duration returns the window length.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Equal reports instant-level equality of both endpoints.
func (w TimeWindow) Equal(other TimeWindow) bool {
	return w.Start.Equal(other.Start) && w.End.Equal(other.End)
}

// Date returns the window's calendar day in "2006-01-02" form (UTC).
func (w TimeWindow) Date() string {
	return w.Start.UTC().Format("2006-01-02")
}

// SlotKey returns the normalized slot identity used by the reservation
// store's uniqueness index: calendar day plus start expressed as Unix seconds.
func (w TimeWindow) SlotKey() string {
	return fmt.Sprintf("%s/%d", w.Date(), w.Start.Unix())
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.UTC().Format(time.RFC3339), w.End.UTC().Format(time.RFC3339))
}
