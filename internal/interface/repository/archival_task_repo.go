package repository

import (
	"context"
	"time"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormArchivalTaskRepository implements the ArchivalTaskRepository interface
type GormArchivalTaskRepository struct {
	db *gorm.DB
}

// NewGormArchivalTaskRepository creates a new GORM archival task repository
func NewGormArchivalTaskRepository(db *gorm.DB) repository.ArchivalTaskRepository {
	return &GormArchivalTaskRepository{
		db: db,
	}
}

// ArchivalTasks GORM model for database mapping
type ArchivalTasks struct {
	gorm.Model
	BookingID string    `gorm:"column:booking_id;index"`
	DueAt     time.Time `gorm:"column:due_at;index"`
	Status    string    `gorm:"column:status"`
}

// TableName overrides the default table name
func (ArchivalTasks) TableName() string {
	return "archival_tasks"
}

// Create inserts a new archival task into the database
func (r *GormArchivalTaskRepository) Create(ctx context.Context, task *entity.ArchivalTask) error {
	model := ArchivalTasks{
		BookingID: task.BookingID,
		DueAt:     task.DueAt,
		Status:    task.Status,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	// Update the entity with the generated ID
	task.ID = model.ID
	task.CreatedAt = model.CreatedAt
	task.UpdatedAt = model.UpdatedAt

	return nil
}

// FindDue returns pending tasks whose due time has passed, oldest first
func (r *GormArchivalTaskRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.ArchivalTask, error) {
	var tasks []ArchivalTasks
	result := r.db.WithContext(ctx).
		Where("due_at <= ?", now).
		Where("status = ?", entity.TaskPending).
		Order("due_at asc").
		Limit(limit).
		Find(&tasks)

	if result.Error != nil {
		return nil, result.Error
	}

	var entities []*entity.ArchivalTask
	for _, task := range tasks {
		entities = append(entities, &entity.ArchivalTask{
			ID:        task.ID,
			BookingID: task.BookingID,
			DueAt:     task.DueAt,
			Status:    task.Status,
			CreatedAt: task.CreatedAt,
			UpdatedAt: task.UpdatedAt,
		})
	}

	return entities, nil
}

// MarkStatus moves a task to done or skipped
func (r *GormArchivalTaskRepository) MarkStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&ArchivalTasks{}).
		Where("id = ?", id).
		Update("status", status)
	return result.Error
}
