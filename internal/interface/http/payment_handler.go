package http

import (
	"errors"
	"net/http"

	"github.com/prkservices/booking-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles razorpay order creation and verification
type PaymentHandler struct {
	usecase *usecase.PaymentUseCase
	keyID   string
}

// NewPaymentHandler creates a new payment handler. keyID is exposed to
// clients so they can open the checkout widget.
func NewPaymentHandler(uc *usecase.PaymentUseCase, keyID string) *PaymentHandler {
	return &PaymentHandler{usecase: uc, keyID: keyID}
}

type createOrderRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

// CreateOrder handles POST /api/payment/create-order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Booking id is required.",
		})
		return
	}

	orderID, err := h.usecase.CreateOrder(c.Request.Context(), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found.",
			})
		case errors.Is(err, usecase.ErrGatewayNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"message": "Payments are not available right now.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to create payment order.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orderId": orderID,
		"keyId":   h.keyID,
	})
}

type verifyPaymentRequest struct {
	BookingID         string `json:"bookingId" binding:"required"`
	RazorpayOrderID   string `json:"razorpayOrderId" binding:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" binding:"required"`
	RazorpaySignature string `json:"razorpaySignature" binding:"required"`
}

// VerifyPayment handles POST /api/payment/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Order, payment and signature are required.",
		})
		return
	}

	err := h.usecase.VerifyPayment(c.Request.Context(), req.BookingID, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Payment verification failed.",
			})
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to verify payment.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully.",
	})
}
