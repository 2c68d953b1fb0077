package repository

import (
	"context"

	"github.com/prkservices/booking-service/internal/domain/entity"
)

// BookingRepository defines the interface for booking storage operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error
	UpdateReply(ctx context.Context, id, reply string) error
	Delete(ctx context.Context, id string) error
}
