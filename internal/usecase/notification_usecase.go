package usecase

import (
	"context"
	"errors"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

// notificationFeedLimit matches the admin dashboard page size
const notificationFeedLimit = 50

// NotificationUseCase serves the admin notification feed. Records are
// write-once snapshots of booking creation; they are never synced with
// the booking afterwards.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase creates a new notification usecase
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListLatest returns the newest notifications for the admin feed
func (u *NotificationUseCase) ListLatest(ctx context.Context) ([]*entity.Notification, error) {
	return u.repo.FindLatest(ctx, notificationFeedLimit)
}

// MarkRead flags one notification as read
func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	notification, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return notification, nil
}
