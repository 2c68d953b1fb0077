package repository

import (
	"context"
	"time"

	"github.com/prkservices/booking-service/internal/domain/entity"
)

// ArchivalTaskRepository defines the interface for durable archival tasks
type ArchivalTaskRepository interface {
	Create(ctx context.Context, task *entity.ArchivalTask) error
	FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.ArchivalTask, error)
	MarkStatus(ctx context.Context, id uint, status string) error
}
