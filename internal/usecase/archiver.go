package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"
	"github.com/prkservices/booking-service/pkg/logger"
	"github.com/prkservices/booking-service/pkg/metrics"
)

// sweepBatchSize caps the tasks claimed by one sweep
const sweepBatchSize = 50

// ArchiverUseCase moves completed bookings into the archive store after a
// fixed delay. Arming writes a durable task row, so armed archivals
// survive restarts: whatever is due gets picked up by the next sweep.
type ArchiverUseCase struct {
	taskRepo    repository.ArchivalTaskRepository
	bookingRepo repository.BookingRepository
	archiveRepo repository.ArchivedBookingRepository
	publisher   repository.EventPublisher
	delay       time.Duration
	logger      logger.Logger
	metrics     *metrics.Metrics

	now func() time.Time
}

var _ ArchivalScheduler = (*ArchiverUseCase)(nil)

// NewArchiverUseCase creates a new archiver
func NewArchiverUseCase(
	taskRepo repository.ArchivalTaskRepository,
	bookingRepo repository.BookingRepository,
	archiveRepo repository.ArchivedBookingRepository,
	publisher repository.EventPublisher,
	delay time.Duration,
	logger logger.Logger,
	m *metrics.Metrics,
) *ArchiverUseCase {
	return &ArchiverUseCase{
		taskRepo:    taskRepo,
		bookingRepo: bookingRepo,
		archiveRepo: archiveRepo,
		publisher:   publisher,
		delay:       delay,
		logger:      logger,
		metrics:     m,
		now:         time.Now,
	}
}

// Arm schedules a deferred archival for a booking id. Arming is not
// cancellable; the status check happens when the task fires.
func (a *ArchiverUseCase) Arm(ctx context.Context, bookingID string) error {
	task := &entity.ArchivalTask{
		BookingID: bookingID,
		DueAt:     a.now().Add(a.delay),
		Status:    entity.TaskPending,
	}
	if err := a.taskRepo.Create(ctx, task); err != nil {
		return err
	}
	a.logger.Info("Archival armed", "bookingId", bookingID, "dueAt", task.DueAt)
	return nil
}

// Sweep processes every due task once. Errors on a single task are logged
// and leave it pending for the next sweep; there is no retry bookkeeping.
func (a *ArchiverUseCase) Sweep(ctx context.Context) error {
	start := a.now()

	tasks, err := a.taskRepo.FindDue(ctx, start, sweepBatchSize)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		a.processTask(ctx, task)
	}

	a.metrics.SweepDuration.Observe(a.now().Sub(start).Seconds())
	return nil
}

func (a *ArchiverUseCase) processTask(ctx context.Context, task *entity.ArchivalTask) {
	booking, err := a.bookingRepo.FindByID(ctx, task.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Deleted through another path before the task fired.
			a.markTask(ctx, task, entity.TaskSkipped)
			return
		}
		a.logger.Error("Failed to load booking for archival", "bookingId", task.BookingID, "error", err)
		a.metrics.ErrorsCount.WithLabelValues("archive_load").Inc()
		return
	}

	if booking.Status != entity.BookingCompleted {
		a.markTask(ctx, task, entity.TaskSkipped)
		return
	}

	archived := entity.NewArchivedBooking(booking, a.now())
	if err := a.archiveRepo.Create(ctx, archived); err != nil {
		a.logger.Error("Failed to write archive record", "bookingId", task.BookingID, "error", err)
		a.metrics.ErrorsCount.WithLabelValues("archive_write").Inc()
		return
	}

	if err := a.bookingRepo.Delete(ctx, task.BookingID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		a.logger.Error("Failed to delete archived booking", "bookingId", task.BookingID, "error", err)
		a.metrics.ErrorsCount.WithLabelValues("archive_delete").Inc()
		return
	}

	a.publisher.Publish(entity.EventBookingRemoved, map[string]interface{}{
		"bookingId": task.BookingID,
		"message":   "Booking archived",
	})
	a.metrics.BookingsArchived.Inc()
	a.logger.Info("Booking archived", "bookingId", task.BookingID, "archiveId", archived.ID)

	a.markTask(ctx, task, entity.TaskDone)
}

func (a *ArchiverUseCase) markTask(ctx context.Context, task *entity.ArchivalTask, status string) {
	if err := a.taskRepo.MarkStatus(ctx, task.ID, status); err != nil {
		a.logger.Error("Failed to mark archival task", "taskId", task.ID, "status", status, "error", err)
	}
}
