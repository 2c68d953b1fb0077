package repository

import (
	"context"

	"github.com/prkservices/booking-service/internal/domain/entity"
)

// ArchivedBookingRepository defines the interface for the historical store
type ArchivedBookingRepository interface {
	Create(ctx context.Context, archived *entity.ArchivedBooking) error
	FindByOriginalID(ctx context.Context, originalID string) (*entity.ArchivedBooking, error)
}
