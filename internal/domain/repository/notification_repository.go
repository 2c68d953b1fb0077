package repository

import (
	"context"

	"github.com/prkservices/booking-service/internal/domain/entity"
)

// NotificationRepository defines the interface for the admin notification log
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindLatest(ctx context.Context, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) (*entity.Notification, error)
}
