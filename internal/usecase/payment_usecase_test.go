package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prkservices/booking-service/internal/domain/entity"
	mock_repository "github.com/prkservices/booking-service/internal/domain/repository/mocks"
	mock_usecase "github.com/prkservices/booking-service/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, testLogger)
		if _, err := uc.CreateOrder(ctx, "b-1"); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := mock_usecase.NewMockIBookingUseCase(ctrl)
		gateway := mock_repository.NewMockPaymentGateway(ctrl)
		uc := NewPaymentUseCase(bookings, gateway, testLogger)

		bookings.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, ErrBookingNotFound)

		if _, err := uc.CreateOrder(ctx, "nope"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("order uses the stored total, not client input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := mock_usecase.NewMockIBookingUseCase(ctrl)
		gateway := mock_repository.NewMockPaymentGateway(ctrl)
		uc := NewPaymentUseCase(bookings, gateway, testLogger)

		b := validBooking()
		b.ID = "b-1"
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), 109.0, "b-1").Return("order_xyz", nil)

		orderID, err := uc.CreateOrder(ctx, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderID != "order_xyz" {
			t.Fatalf("expected order_xyz, got %q", orderID)
		}
	})
}

func TestPaymentUseCase_VerifyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("bad signature leaves the booking alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := mock_usecase.NewMockIBookingUseCase(ctrl)
		gateway := mock_repository.NewMockPaymentGateway(ctrl)
		uc := NewPaymentUseCase(bookings, gateway, testLogger)

		gateway.EXPECT().VerifySignature("order_xyz", "pay_1", "forged").Return(false)

		err := uc.VerifyPayment(ctx, "b-1", "order_xyz", "pay_1", "forged")
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("valid signature marks payment completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := mock_usecase.NewMockIBookingUseCase(ctrl)
		gateway := mock_repository.NewMockPaymentGateway(ctrl)
		uc := NewPaymentUseCase(bookings, gateway, testLogger)

		gateway.EXPECT().VerifySignature("order_xyz", "pay_1", "good").Return(true)
		bookings.EXPECT().SetPaymentStatus(gomock.Any(), "b-1", entity.PaymentCompleted).Return(validBooking(), nil)

		if err := uc.VerifyPayment(ctx, "b-1", "order_xyz", "pay_1", "good"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
