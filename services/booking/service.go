package booking

import (
	"time"

	reservationRepo "github.com/joaquinperez028/landingPageNahuel-sub003/database/repository/reservation"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/calendar"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/notification"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/pricing"
)

// OperatingHours parametrizes the candidate grid the slot generator walks:
// operating hours, step size, and how far ahead bookings are accepted.
type OperatingHours struct {
	OpenMinute         int // minutes from midnight UTC
	CloseMinute        int
	GranularityMinutes int
	HorizonDays        int
}

// DefaultBookingService is the production implementation of the booking
// engine. Reservation admission is serialized inside Repo.TryReserve; slot
// generation and cache reads run fully in parallel.
type DefaultBookingService struct {
	Repo         reservationRepo.ReservationRepository
	Registry     *Registry
	Catalog      models.ClassCatalog
	Hours        OperatingHours
	Pricing      pricing.Service
	Calendar     calendar.Service
	Payments     PaymentLinkHandler
	Notification notification.NotificationService
	Reminders    ReminderScheduler
	Cache        *AvailabilityCache
	StoreTimeout time.Duration
	AutoConfirm  bool

	// Now is injected for tests; zero value falls back to the wall clock.
	Now func() time.Time
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

func (svc *DefaultBookingService) storeTimeout() time.Duration {
	if svc.StoreTimeout > 0 {
		return svc.StoreTimeout
	}
	return 5 * time.Second
}
