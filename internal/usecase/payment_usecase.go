package usecase

import (
	"context"
	"errors"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"
	"github.com/prkservices/booking-service/pkg/logger"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidSignature     = errors.New("payment signature verification failed")
)

// PaymentUseCase bridges the checkout flow to the payment processor. The
// booking in the store is the source of truth for the amount; the client
// never dictates what is charged.
type PaymentUseCase struct {
	bookings IBookingUseCase
	gateway  repository.PaymentGateway
	logger   logger.Logger
}

// NewPaymentUseCase creates a new payment usecase. A nil gateway is
// tolerated at wiring time (missing credentials); calls then fail cleanly.
func NewPaymentUseCase(bookings IBookingUseCase, gateway repository.PaymentGateway, logger logger.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		bookings: bookings,
		gateway:  gateway,
		logger:   logger,
	}
}

// CreateOrder registers a processor order for a booking's total amount
func (u *PaymentUseCase) CreateOrder(ctx context.Context, bookingID string) (string, error) {
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return "", err
	}

	orderID, err := u.gateway.CreateOrder(ctx, booking.TotalAmount, bookingID)
	if err != nil {
		u.logger.Error("Payment order creation failed", "bookingId", bookingID, "error", err)
		return "", err
	}

	u.logger.Info("Payment order created", "bookingId", bookingID, "orderId", orderID)
	return orderID, nil
}

// VerifyPayment checks the checkout callback signature and, on success,
// marks the booking's payment as completed (which broadcasts the update).
func (u *PaymentUseCase) VerifyPayment(ctx context.Context, bookingID, orderID, paymentID, signature string) error {
	if u.gateway == nil {
		return ErrGatewayNotConfigured
	}

	if !u.gateway.VerifySignature(orderID, paymentID, signature) {
		return ErrInvalidSignature
	}

	if _, err := u.bookings.SetPaymentStatus(ctx, bookingID, entity.PaymentCompleted); err != nil {
		return err
	}

	u.logger.Info("Payment verified", "bookingId", bookingID, "orderId", orderID, "paymentId", paymentID)
	return nil
}
