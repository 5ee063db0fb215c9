package booking

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	reservationRepo "github.com/joaquinperez028/landingPageNahuel-sub003/database/repository/reservation"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/calendar"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/notification"
)

// fakeScheduleRepo serves recurring blocks from memory.
type fakeScheduleRepo struct {
	mu     sync.Mutex
	blocks []models.RecurringBlock
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id string) (*models.RecurringBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			b := f.blocks[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("block %s not found", id)
}

func (f *fakeScheduleRepo) ActiveByWeekday(_ context.Context, weekday time.Weekday) ([]models.RecurringBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.RecurringBlock
	for _, b := range f.blocks {
		if b.Active && b.Weekday == weekday {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ActiveByWeekdayAndClass(_ context.Context, weekday time.Weekday, class models.ResourceClass) ([]models.RecurringBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.RecurringBlock
	for _, b := range f.blocks {
		if b.Active && b.Weekday == weekday && b.ResourceClass == class {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListByClass(_ context.Context, class models.ResourceClass) ([]models.RecurringBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.RecurringBlock
	for _, b := range f.blocks {
		if b.ResourceClass == class {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, block *models.RecurringBlock) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.blocks {
		if f.blocks[i].ID == block.ID {
			f.blocks[i] = *block
			return nil
		}
	}
	f.blocks = append(f.blocks, *block)
	return nil
}

func (f *fakeScheduleRepo) Deactivate(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			f.blocks[i].Active = false
			return nil
		}
	}
	return fmt.Errorf("block %s not found", id)
}

// fakeReservationRepo keeps the ledger in memory. TryReserve holds the mutex
// across the overlap scan and the insert, mirroring the transactional
// atomicity of the real store.
//
// cancelErr, when set, is returned by every Cancel call.
// reserveTimeoutsAfterCommit makes that many TryReserve calls commit the
// insert but still report a deadline expiry, simulating a transaction whose
// acknowledgement was lost after the write went through.
type fakeReservationRepo struct {
	mu                         sync.Mutex
	reservations               map[string]*models.Reservation
	cancelErr                  error
	reserveTimeoutsAfterCommit int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*models.Reservation)}
}

func (f *fakeReservationRepo) TryReserve(_ context.Context, res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var conflicting []models.Reservation
	for _, existing := range f.reservations {
		if existing.ResourceClass == res.ResourceClass && existing.IsLive() && existing.Window.Overlaps(res.Window) {
			conflicting = append(conflicting, *existing)
		}
	}
	if len(conflicting) > 0 {
		return &reservationRepo.OverlapError{
			ResourceClass: res.ResourceClass,
			Requested:     res.Window,
			Conflicting:   conflicting,
		}
	}

	stored := *res
	f.reservations[res.ID] = &stored

	if f.reserveTimeoutsAfterCommit > 0 {
		f.reserveTimeoutsAfterCommit--
		return context.DeadlineExceeded
	}
	return nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	out := *res
	return &out, nil
}

func (f *fakeReservationRepo) Confirm(_ context.Context, id string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	if res.Status != models.ReservationPending {
		return nil, reservationRepo.ErrNotConfirmable
	}
	res.Status = models.ReservationConfirmed
	res.UpdatedAt = time.Now().UTC()
	out := *res
	return &out, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	if res.Status == models.ReservationCancelled {
		return nil, reservationRepo.ErrNotCancellable
	}
	res.Status = models.ReservationCancelled
	res.UpdatedAt = time.Now().UTC()
	out := *res
	return &out, nil
}

func (f *fakeReservationRepo) AttachSideEffectRefs(_ context.Context, id, eventRef, joinLink, paymentLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrNotFound
	}
	if eventRef != "" {
		res.ExternalEventRef = eventRef
	}
	if joinLink != "" {
		res.JoinLink = joinLink
	}
	if paymentLink != "" {
		res.PaymentLinkURL = paymentLink
	}
	return nil
}

func (f *fakeReservationRepo) LiveOverlapping(_ context.Context, class models.ResourceClass, window models.TimeWindow) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, res := range f.reservations {
		if res.ResourceClass == class && res.IsLive() && res.Window.Overlaps(window) {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) LiveInRange(ctx context.Context, class models.ResourceClass, rangeWindow models.TimeWindow) ([]models.Reservation, error) {
	return f.LiveOverlapping(ctx, class, rangeWindow)
}

// fakeNotifier records deliveries; fail makes every Notify return an error.
type fakeNotifier struct {
	mu     sync.Mutex
	fail   bool
	events []notification.Event
}

func (f *fakeNotifier) Notify(_ context.Context, _ string, event notification.Event, _, _ string, _ map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("push gateway unreachable")
	}
	f.events = append(f.events, event)
	return nil
}

type fakePayments struct {
	fail bool
}

func (f *fakePayments) CreatePaymentLink(_ context.Context, res *models.Reservation) (string, error) {
	if f.fail {
		return "", fmt.Errorf("payment provider unavailable")
	}
	return "https://pay.example.com/" + res.ID, nil
}

type fakeCalendar struct {
	fail bool
}

func (f *fakeCalendar) CreateEvent(_ context.Context, res *models.Reservation) (*calendar.Event, error) {
	if f.fail {
		return nil, fmt.Errorf("calendar backend unavailable")
	}
	return &calendar.Event{
		ExternalEventRef: "evt-" + res.ID,
		JoinLink:         "https://meet.example.com/" + res.ID,
	}, nil
}

type fakeReminders struct {
	mu        sync.Mutex
	scheduled []string
}

func (f *fakeReminders) ScheduleReminder(_ context.Context, res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, res.ID)
	return nil
}

// memRedis implements cacheBackend over a plain map, with real redis
// GET/SET/INCR semantics (missing keys read as redis.Nil, INCR starts at 0).
type memRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemRedis() *memRedis {
	return &memRedis{data: make(map[string]string)}
}

func (m *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	default:
		return redis.NewStatusResult("", fmt.Errorf("unsupported value type %T", value))
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, err := strconv.ParseInt(m.data[key], 10, 64)
	if err != nil && m.data[key] != "" {
		return redis.NewIntResult(0, err)
	}
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func testCatalog() models.ClassCatalog {
	return models.NewClassCatalog([]models.ClassConfig{
		{Class: models.ClassTrainingSwing, DisplayName: "Swing Trading", DurationMinutes: 60, RequiresBlockAlignment: true, CodePrefix: "TS", BasePrice: 50, Currency: "USD"},
		{Class: models.ClassTrainingAdvanced, DisplayName: "Advanced Strategies", DurationMinutes: 90, RequiresBlockAlignment: true, CodePrefix: "TA", BasePrice: 75, Currency: "USD"},
		{Class: models.ClassAdvisoryConsult, DisplayName: "Consultorio Financiero", DurationMinutes: 60, RequiresBlockAlignment: false, CodePrefix: "CF", BasePrice: 120, Currency: "USD"},
		{Class: models.ClassAdvisoryAccount, DisplayName: "Cuenta Asesorada", DurationMinutes: 45, RequiresBlockAlignment: false, CodePrefix: "CA", BasePrice: 150, Currency: "USD"},
	})
}
