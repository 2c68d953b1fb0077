package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"
	mock_repository "github.com/prkservices/booking-service/internal/domain/repository/mocks"

	"go.uber.org/mock/gomock"
)

type archiverMocks struct {
	taskRepo    *mock_repository.MockArchivalTaskRepository
	bookingRepo *mock_repository.MockBookingRepository
	archiveRepo *mock_repository.MockArchivedBookingRepository
	publisher   *mock_repository.MockEventPublisher
}

func newArchiver(t *testing.T, at time.Time) (*ArchiverUseCase, archiverMocks) {
	ctrl := gomock.NewController(t)
	m := archiverMocks{
		taskRepo:    mock_repository.NewMockArchivalTaskRepository(ctrl),
		bookingRepo: mock_repository.NewMockBookingRepository(ctrl),
		archiveRepo: mock_repository.NewMockArchivedBookingRepository(ctrl),
		publisher:   mock_repository.NewMockEventPublisher(ctrl),
	}
	a := NewArchiverUseCase(m.taskRepo, m.bookingRepo, m.archiveRepo, m.publisher, 24*time.Hour, testLogger, testMetrics)
	a.now = func() time.Time { return at }
	return a, m
}

func TestArchiver_Arm(t *testing.T) {
	armedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	a, m := newArchiver(t, armedAt)

	m.taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task *entity.ArchivalTask) error {
			if task.BookingID != "b-1" {
				t.Errorf("unexpected booking id %q", task.BookingID)
			}
			if !task.DueAt.Equal(armedAt.Add(24 * time.Hour)) {
				t.Errorf("expected due 24h after arming, got %v", task.DueAt)
			}
			if task.Status != entity.TaskPending {
				t.Errorf("expected pending task, got %q", task.Status)
			}
			return nil
		})

	if err := a.Arm(context.Background(), "b-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestArchiver_Sweep(t *testing.T) {
	sweepAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	dueTask := func() *entity.ArchivalTask {
		return &entity.ArchivalTask{ID: 7, BookingID: "b-1", DueAt: sweepAt.Add(-time.Minute), Status: entity.TaskPending}
	}
	completed := func() *entity.Booking {
		b := validBooking()
		b.ID = "b-1"
		b.Status = entity.BookingCompleted
		return b
	}

	t.Run("due completed booking moves to the archive", func(t *testing.T) {
		a, m := newArchiver(t, sweepAt)

		m.taskRepo.EXPECT().FindDue(gomock.Any(), sweepAt, sweepBatchSize).Return([]*entity.ArchivalTask{dueTask()}, nil)
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), "b-1").Return(completed(), nil)
		m.archiveRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, archived *entity.ArchivedBooking) error {
				if archived.OriginalID != "b-1" {
					t.Errorf("expected originalId b-1, got %q", archived.OriginalID)
				}
				if !archived.ArchivedAt.Equal(sweepAt) {
					t.Errorf("expected archivedAt %v, got %v", sweepAt, archived.ArchivedAt)
				}
				return nil
			})
		m.bookingRepo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)
		m.publisher.EXPECT().Publish(entity.EventBookingRemoved, gomock.Any())
		m.taskRepo.EXPECT().MarkStatus(gomock.Any(), uint(7), entity.TaskDone).Return(nil)

		if err := a.Sweep(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("booking deleted before the task fired", func(t *testing.T) {
		a, m := newArchiver(t, sweepAt)

		m.taskRepo.EXPECT().FindDue(gomock.Any(), sweepAt, sweepBatchSize).Return([]*entity.ArchivalTask{dueTask()}, nil)
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), "b-1").Return(nil, repository.ErrNotFound)
		m.taskRepo.EXPECT().MarkStatus(gomock.Any(), uint(7), entity.TaskSkipped).Return(nil)

		if err := a.Sweep(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("booking no longer completed is skipped", func(t *testing.T) {
		a, m := newArchiver(t, sweepAt)
		b := completed()
		b.Status = entity.BookingAccepted

		m.taskRepo.EXPECT().FindDue(gomock.Any(), sweepAt, sweepBatchSize).Return([]*entity.ArchivalTask{dueTask()}, nil)
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), "b-1").Return(b, nil)
		m.taskRepo.EXPECT().MarkStatus(gomock.Any(), uint(7), entity.TaskSkipped).Return(nil)

		if err := a.Sweep(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("archive write failure leaves the task pending", func(t *testing.T) {
		a, m := newArchiver(t, sweepAt)

		m.taskRepo.EXPECT().FindDue(gomock.Any(), sweepAt, sweepBatchSize).Return([]*entity.ArchivalTask{dueTask()}, nil)
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), "b-1").Return(completed(), nil)
		m.archiveRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))
		// No MarkStatus call: the next sweep retries.

		if err := a.Sweep(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("one bad task does not block the rest", func(t *testing.T) {
		a, m := newArchiver(t, sweepAt)
		second := &entity.ArchivalTask{ID: 8, BookingID: "b-2", DueAt: sweepAt.Add(-time.Second), Status: entity.TaskPending}
		b2 := completed()
		b2.ID = "b-2"

		m.taskRepo.EXPECT().FindDue(gomock.Any(), sweepAt, sweepBatchSize).Return([]*entity.ArchivalTask{dueTask(), second}, nil)
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), "b-1").Return(nil, errors.New("mongo timeout"))
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), "b-2").Return(b2, nil)
		m.archiveRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.bookingRepo.EXPECT().Delete(gomock.Any(), "b-2").Return(nil)
		m.publisher.EXPECT().Publish(entity.EventBookingRemoved, gomock.Any())
		m.taskRepo.EXPECT().MarkStatus(gomock.Any(), uint(8), entity.TaskDone).Return(nil)

		if err := a.Sweep(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("find due failure stops the sweep", func(t *testing.T) {
		a, m := newArchiver(t, sweepAt)
		m.taskRepo.EXPECT().FindDue(gomock.Any(), sweepAt, sweepBatchSize).Return(nil, errors.New("pg down"))
		if err := a.Sweep(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}
