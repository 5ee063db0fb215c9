package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	reservationRepo "github.com/joaquinperez028/landingPageNahuel-sub003/database/repository/reservation"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/notification"
	"github.com/joaquinperez028/landingPageNahuel-sub003/utils"
)

// storeRetryBackoff is the pause before the single internal retry of a timed
// out admission transaction.
const storeRetryBackoff = 200 * time.Millisecond

// Book validates and atomically admits a reservation for the requested
// window.
//
// Validation that needs no store access runs first; then the window is
// re-validated against freshly generated slots (the client may be acting on a
// cached availability view that has since gone stale); then the store's
// TryReserve decides the race. Side effects after admission are best-effort:
// their failures come back as warnings on an otherwise successful result.
// The availability cache is invalidated after the store mutation commits and
// before this method returns.
func (svc *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()
	now := svc.now()

	cfg, ok := svc.Catalog.Get(req.ResourceClass)
	if !ok {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown resource class %q", req.ResourceClass)}
	}
	if req.OwnerIdentity == "" {
		return nil, &ValidationError{Reason: "missing owner identity"}
	}

	window := models.NewTimeWindow(req.Start, time.Duration(cfg.DurationMinutes)*time.Minute)
	if req.End != nil && !req.End.UTC().Equal(window.End) {
		return nil, &ValidationError{Reason: fmt.Sprintf(
			"duration must be exactly %d minutes for %s", cfg.DurationMinutes, cfg.Class)}
	}
	if !window.Start.After(now) {
		return nil, &ValidationError{Reason: "window must start in the future"}
	}

	offered, err := svc.windowOffered(ctx, cfg, window, now)
	if err != nil {
		return nil, err
	}
	if !offered {
		// Distinguish a claimed window from one that was never offerable.
		if conflicting, scanErr := svc.Repo.LiveOverlapping(ctx, cfg.Class, window); scanErr == nil && len(conflicting) > 0 {
			return nil, unavailable(cfg.Class, window, conflicting)
		}
		return nil, &ValidationError{Reason: fmt.Sprintf("window %s is not offerable for %s", window, cfg.Class)}
	}

	quote, err := svc.Pricing.PriceFor(ctx, cfg.Class, window)
	if err != nil {
		return nil, fmt.Errorf("failed to price reservation: %w", err)
	}

	res := &models.Reservation{
		ID:               uuid.New().String(),
		ResourceClass:    cfg.Class,
		Window:           window,
		SlotKey:          window.SlotKey(),
		Status:           models.ReservationPending,
		ConfirmationCode: NewConfirmationCode(cfg.CodePrefix, now),
		OwnerIdentity:    req.OwnerIdentity,
		PriceSnapshot:    quote.Amount,
		Currency:         quote.Currency,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}

	if err := svc.tryReserve(ctx, res); err != nil {
		return nil, err
	}
	logger.Info("reservation admitted",
		zap.String("reservationID", res.ID),
		zap.String("class", string(res.ResourceClass)),
		zap.String("window", res.Window.String()))

	warnings := svc.runSideEffects(ctx, res)

	if svc.AutoConfirm {
		if confirmed, err := svc.Repo.Confirm(ctx, res.ID); err != nil {
			logger.Warn("auto-confirm failed", zap.String("reservationID", res.ID), zap.Error(err))
			warnings = append(warnings, "reservation is held but not yet confirmed")
		} else {
			res.Status = confirmed.Status
			res.UpdatedAt = confirmed.UpdatedAt
			if svc.Reminders != nil {
				if err := svc.Reminders.ScheduleReminder(ctx, res); err != nil {
					logger.Warn("failed to schedule reminder", zap.String("reservationID", res.ID), zap.Error(err))
					warnings = append(warnings, "session reminder could not be scheduled")
				}
			}
		}
	}

	if err := svc.Cache.Invalidate(ctx, res.ResourceClass); err != nil {
		logger.Error("availability cache invalidation failed",
			zap.String("class", string(res.ResourceClass)), zap.Error(err))
	}

	return &models.BookingResult{Reservation: res, Warnings: warnings}, nil
}

// Cancel transitions a live reservation to cancelled. The freed window
// becomes offerable again immediately; the repository's guarded update makes
// the transition forward-only, so a late cancel can never take back a window
// another reservation has since claimed.
func (svc *DefaultBookingService) Cancel(ctx context.Context, reservationID string) (*models.Reservation, error) {
	logger := utils.GetLogger()

	cancelCtx, cancel := context.WithTimeout(ctx, svc.storeTimeout())
	defer cancel()

	res, err := svc.Repo.Cancel(cancelCtx, reservationID)
	if err != nil {
		if isStoreTimeout(err) {
			return nil, &StoreTimeoutError{Op: "cancel", Err: err}
		}
		return nil, err
	}
	logger.Info("reservation cancelled",
		zap.String("reservationID", res.ID),
		zap.String("class", string(res.ResourceClass)))

	if svc.Notification != nil {
		if err := svc.Notification.Notify(ctx, res.OwnerIdentity, notification.EventCancelled,
			"Session cancelled",
			fmt.Sprintf("Your session on %s was cancelled.", res.Window.Start.Format("Jan 2 15:04 MST")),
			map[string]string{"reservationId": res.ID}); err != nil {
			logger.Warn("cancellation push failed", zap.String("reservationID", res.ID), zap.Error(err))
		}
	}

	if err := svc.Cache.Invalidate(ctx, res.ResourceClass); err != nil {
		logger.Error("availability cache invalidation failed",
			zap.String("class", string(res.ResourceClass)), zap.Error(err))
	}
	return res, nil
}

// GetReservation fetches a reservation by ID.
func (svc *DefaultBookingService) GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error) {
	return svc.Repo.GetByID(ctx, reservationID)
}

// windowOffered regenerates the window's day with current reservation state
// (bypassing the cache) and checks membership.
func (svc *DefaultBookingService) windowOffered(ctx context.Context, cfg models.ClassConfig, window models.TimeWindow, now time.Time) (bool, error) {
	slots, err := svc.generateDay(ctx, cfg, dateOf(window.Start), now)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Window.Equal(window) {
			return true, nil
		}
	}
	return false, nil
}

// tryReserve runs the admission transaction with a bounded deadline, retrying
// once after a short backoff when the store times out, and maps repository
// errors onto the booking error taxonomy.
func (svc *DefaultBookingService) tryReserve(ctx context.Context, res *models.Reservation) error {
	attempt := func() error {
		reserveCtx, cancel := context.WithTimeout(ctx, svc.storeTimeout())
		defer cancel()
		return svc.Repo.TryReserve(reserveCtx, res)
	}

	err := attempt()
	if isStoreTimeout(err) {
		time.Sleep(storeRetryBackoff)
		err = attempt()
	}
	if err == nil {
		return nil
	}

	var overlap *reservationRepo.OverlapError
	if errors.As(err, &overlap) {
		// A timed out first attempt may have committed; the retry then
		// collides with our own reservation. That is a win, not a conflict.
		for _, r := range overlap.Conflicting {
			if r.ID == res.ID {
				return nil
			}
		}
		return unavailable(overlap.ResourceClass, overlap.Requested, overlap.Conflicting)
	}
	if isStoreTimeout(err) {
		return &StoreTimeoutError{Op: "tryReserve", Err: err}
	}
	return fmt.Errorf("reservation admission failed: %w", err)
}

func isStoreTimeout(err error) bool {
	return err != nil && errors.Is(err, context.DeadlineExceeded)
}

func unavailable(class models.ResourceClass, requested models.TimeWindow, conflicting []models.Reservation) *SlotUnavailableError {
	windows := make([]models.TimeWindow, len(conflicting))
	for i, r := range conflicting {
		windows[i] = r.Window
	}
	return &SlotUnavailableError{
		ResourceClass: class,
		Requested:     requested,
		Conflicting:   windows,
	}
}

// runSideEffects fires the post-admission integrations in order: calendar
// event, payment link, booked push. Each failure is logged and reported as a
// warning; none of them roll the reservation back.
func (svc *DefaultBookingService) runSideEffects(ctx context.Context, res *models.Reservation) []string {
	logger := utils.GetLogger()
	var warnings []string

	if svc.Calendar != nil {
		if event, err := svc.Calendar.CreateEvent(ctx, res); err != nil {
			logger.Warn("calendar event creation failed", zap.String("reservationID", res.ID), zap.Error(err))
			warnings = append(warnings, "calendar invite could not be created; we will follow up")
		} else {
			res.ExternalEventRef = event.ExternalEventRef
			res.JoinLink = event.JoinLink
		}
	}

	if svc.Payments != nil {
		if url, err := svc.Payments.CreatePaymentLink(ctx, res); err != nil {
			logger.Warn("payment link creation failed", zap.String("reservationID", res.ID), zap.Error(err))
			warnings = append(warnings, "payment link could not be issued; we will follow up")
		} else {
			res.PaymentLinkURL = url
		}
	}

	if res.ExternalEventRef != "" || res.JoinLink != "" || res.PaymentLinkURL != "" {
		if err := svc.Repo.AttachSideEffectRefs(ctx, res.ID, res.ExternalEventRef, res.JoinLink, res.PaymentLinkURL); err != nil {
			logger.Warn("failed to persist side-effect refs", zap.String("reservationID", res.ID), zap.Error(err))
			warnings = append(warnings, "booking references could not be saved completely")
		}
	}

	if svc.Notification != nil {
		if err := svc.Notification.Notify(ctx, res.OwnerIdentity, notification.EventBooked,
			"Booking confirmed",
			fmt.Sprintf("Your session is booked for %s. Confirmation code: %s.",
				res.Window.Start.Format("Jan 2 15:04 MST"), res.ConfirmationCode),
			map[string]string{"reservationId": res.ID, "confirmationCode": res.ConfirmationCode}); err != nil {
			logger.Warn("booking push failed", zap.String("reservationID", res.ID), zap.Error(err))
			warnings = append(warnings, "booking notification could not be delivered")
		}
	}

	return warnings
}
