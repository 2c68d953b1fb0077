package http

import (
	"errors"
	"net/http"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for bookings
type BookingHandler struct {
	usecase  usecase.IBookingUseCase
	archiver usecase.ArchivalScheduler
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(uc usecase.IBookingUseCase, archiver usecase.ArchivalScheduler) *BookingHandler {
	return &BookingHandler{usecase: uc, archiver: archiver}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var booking entity.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), &booking)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"booking": created,
	})
}

// ListByEmail handles GET /api/bookings/customer/:email
func (h *BookingHandler) ListByEmail(c *gin.Context) {
	bookings, err := h.usecase.ListByCustomerEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
	})
}

// ListAll handles GET /api/admin/bookings
func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
	})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus handles PUT /api/bookings/:id/status
func (h *BookingHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "status is required",
		})
		return
	}

	booking, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// SetPaymentStatus handles PUT /api/bookings/:id/payment-status
func (h *BookingHandler) SetPaymentStatus(c *gin.Context) {
	var req paymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "paymentStatus is required",
		})
		return
	}

	booking, err := h.usecase.SetPaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment status updated successfully",
		"booking": booking,
	})
}

// Cancel handles POST /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
	})
}

// ScheduleRemoval handles POST /api/bookings/:id/schedule-removal. The
// archival is also armed automatically when a booking reaches completed;
// this endpoint arms it directly.
func (h *BookingHandler) ScheduleRemoval(c *gin.Context) {
	if err := h.archiver.Arm(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to schedule booking removal",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking scheduled for removal",
	})
}

type replyRequest struct {
	Reply string `json:"reply"`
}

// Reply handles POST /api/admin/bookings/:id/reply
func (h *BookingHandler) Reply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	if err := h.usecase.Reply(c.Request.Context(), c.Param("id"), req.Reply); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reply saved successfully",
	})
}

// respondBookingError maps usecase errors onto the error taxonomy:
// NotFound 404, ValidationError 400, InvalidTransition 409, anything
// else 500.
func respondBookingError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "An internal error occurred"

	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		status = http.StatusNotFound
		message = "Booking not found"
	case errors.Is(err, usecase.ErrInvalidTransition):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, usecase.ErrCancelNotAllowed):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrMissingCustomerEmail),
		errors.Is(err, usecase.ErrNoServices),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrTotalMismatch),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrEmptyReply):
		status = http.StatusBadRequest
		message = err.Error()
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
