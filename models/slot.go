package models

// OfferableSlot is an ephemeral projection of a bookable window. It is always
// recomputable from the recurring blocks plus the reservation ledger and is
// never authoritative for admission decisions.
type OfferableSlot struct {
	Date            string        `json:"date"`
	Window          TimeWindow    `json:"window"`
	ResourceClass   ResourceClass `json:"resourceClass"`
	Price           float64       `json:"price"`
	Currency        string        `json:"currency"`
	DurationMinutes int           `json:"durationMinutes"`
}

// DayAvailability groups a day's offerable slots for the API. Days with no
// offerable slots are omitted from responses entirely.
type DayAvailability struct {
	Date  string          `json:"date"`
	Slots []OfferableSlot `json:"slots"`
}
