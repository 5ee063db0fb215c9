package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	reservationRepo "github.com/joaquinperez028/landingPageNahuel-sub003/database/repository/reservation"
	"github.com/joaquinperez028/landingPageNahuel-sub003/middleware"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/booking"
)

// BookingService is wired from main at startup.
var BookingService booking.BookingService

// CreateBooking admits a reservation for the requested window.
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// The token identity wins over anything in the body.
	if identity, ok := c.Get(middleware.IdentityKey); ok {
		if s, ok := identity.(string); ok && s != "" {
			req.OwnerIdentity = s
		}
	}

	result, err := BookingService.Book(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	res := result.Reservation
	c.JSON(http.StatusCreated, models.BookingResponse{
		ReservationID:    res.ID,
		ConfirmationCode: res.ConfirmationCode,
		Status:           res.Status,
		Window:           res.Window,
		PriceSnapshot:    res.PriceSnapshot,
		Currency:         res.Currency,
		JoinLink:         res.JoinLink,
		PaymentLinkURL:   res.PaymentLinkURL,
		Warnings:         result.Warnings,
	})
}

// CancelBooking transitions a live reservation to cancelled.
func CancelBooking(c *gin.Context) {
	reservationID := c.Param("id")

	res, err := BookingService.Cancel(c.Request.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		case errors.Is(err, reservationRepo.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": "reservation is not cancellable"})
		default:
			respondBookingError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservationId": res.ID,
		"status":        res.Status,
	})
}

// GetBooking fetches a reservation by ID.
func GetBooking(c *gin.Context) {
	reservationID := c.Param("id")

	res, err := BookingService.GetReservation(c.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// respondBookingError maps the booking error taxonomy onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var validation *booking.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Reason})
		return
	}

	var unavailable *booking.SlotUnavailableError
	if errors.As(err, &unavailable) {
		c.JSON(http.StatusConflict, gin.H{
			"error":       fmt.Sprintf("slot %s is no longer available", unavailable.Requested),
			"conflicting": unavailable.Conflicting,
		})
		return
	}

	var timeout *booking.StoreTimeoutError
	if errors.As(err, &timeout) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "booking store timed out, please retry"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
