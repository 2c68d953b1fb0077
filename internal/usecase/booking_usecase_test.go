package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"
	mock_repository "github.com/prkservices/booking-service/internal/domain/repository/mocks"
	mock_usecase "github.com/prkservices/booking-service/internal/usecase/mocks"
	"github.com/prkservices/booking-service/pkg/logger"
	"github.com/prkservices/booking-service/pkg/metrics"

	"go.uber.org/mock/gomock"
)

// promauto registers against the default registry, so the test binary
// builds the metrics once and shares them.
var testMetrics = metrics.NewMetrics("usecase_test")

var testLogger = logger.NewLogger()

const adminEmail = "admin@prkservices.in"

type bookingMocks struct {
	repo      *mock_repository.MockBookingRepository
	notifRepo *mock_repository.MockNotificationRepository
	mailer    *mock_repository.MockMailer
	publisher *mock_repository.MockEventPublisher
	scheduler *mock_usecase.MockArchivalScheduler
}

func newBookingUseCase(t *testing.T) (*BookingUseCase, bookingMocks) {
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		repo:      mock_repository.NewMockBookingRepository(ctrl),
		notifRepo: mock_repository.NewMockNotificationRepository(ctrl),
		mailer:    mock_repository.NewMockMailer(ctrl),
		publisher: mock_repository.NewMockEventPublisher(ctrl),
		scheduler: mock_usecase.NewMockArchivalScheduler(ctrl),
	}
	uc := NewBookingUseCase(m.repo, m.notifRepo, m.mailer, m.publisher, m.scheduler, adminEmail, testLogger, testMetrics)
	return uc, m
}

func validBooking() *entity.Booking {
	return &entity.Booking{
		CustomerName:  "Ravi",
		CustomerEmail: "ravi@example.com",
		CustomerPhone: "9999999999",
		Address:       "12 MG Road",
		Pincode:       "560001",
		Services: []entity.BookingService{
			{ServiceID: "svc-1", ServiceName: "Fan Repair", Quantity: 1, Price: 109, TotalPrice: 109},
		},
		TotalAmount:   109,
		PaymentMethod: entity.MethodCOD,
	}
}

func TestBookingUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing customer email", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		b := validBooking()
		b.CustomerEmail = "   "
		if _, err := uc.Create(ctx, b); !errors.Is(err, ErrMissingCustomerEmail) {
			t.Fatalf("expected ErrMissingCustomerEmail, got %v", err)
		}
	})

	t.Run("no services", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		b := validBooking()
		b.Services = nil
		if _, err := uc.Create(ctx, b); !errors.Is(err, ErrNoServices) {
			t.Fatalf("expected ErrNoServices, got %v", err)
		}
	})

	t.Run("bad payment method", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		b := validBooking()
		b.PaymentMethod = "netbanking"
		if _, err := uc.Create(ctx, b); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("total mismatch", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		b := validBooking()
		b.TotalAmount = 999
		if _, err := uc.Create(ctx, b); !errors.Is(err, ErrTotalMismatch) {
			t.Fatalf("expected ErrTotalMismatch, got %v", err)
		}
	})

	t.Run("repo error fails the call", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		if _, err := uc.Create(ctx, validBooking()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("success fires both emails, notification and broadcast", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		b := validBooking()

		m.repo.EXPECT().Create(gomock.Any(), b).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mail *repository.Mail) error {
				if mail.To != adminEmail {
					t.Errorf("first notice should go to the admin, got %q", mail.To)
				}
				return nil
			})
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mail *repository.Mail) error {
				if mail.To != b.CustomerEmail {
					t.Errorf("second notice should go to the customer, got %q", mail.To)
				}
				return nil
			})
		m.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *entity.Notification) error {
				if n.Email != b.CustomerEmail || n.TotalAmount != b.TotalAmount {
					t.Errorf("unexpected notification: %+v", n)
				}
				if n.Status != entity.NotificationPending {
					t.Errorf("expected pending notification, got %q", n.Status)
				}
				return nil
			})
		m.publisher.EXPECT().Publish(entity.EventNewBooking, gomock.Any())

		created, err := uc.Create(ctx, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entity.BookingPending || created.PaymentStatus != entity.PaymentPending {
			t.Fatalf("expected pending defaults, got %q/%q", created.Status, created.PaymentStatus)
		}
	})

	t.Run("email and notification failures do not fail the booking", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		b := validBooking()

		m.repo.EXPECT().Create(gomock.Any(), b).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp")).Times(2)
		m.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db"))
		m.publisher.EXPECT().Publish(entity.EventNewBooking, gomock.Any())

		if _, err := uc.Create(ctx, b); err != nil {
			t.Fatalf("side effect failure leaked into the mutation: %v", err)
		}
	})
}

func TestBookingUseCase_SetStatus(t *testing.T) {
	ctx := context.Background()

	existing := func(status string) *entity.Booking {
		b := validBooking()
		b.ID = "b-1"
		b.Status = status
		b.PaymentStatus = entity.PaymentPending
		return b
	}

	t.Run("unknown status", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		if _, err := uc.SetStatus(ctx, "b-1", "archived"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().FindByID(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)
		if _, err := uc.SetStatus(ctx, "nope", entity.BookingAccepted); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("illegal transition is rejected before any write", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(existing(entity.BookingPending), nil)
		if _, err := uc.SetStatus(ctx, "b-1", entity.BookingCompleted); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("terminal statuses are immutable", func(t *testing.T) {
		for _, from := range []string{entity.BookingRejected, entity.BookingCompleted, entity.BookingCancelled} {
			uc, m := newBookingUseCase(t)
			m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(existing(from), nil)
			if _, err := uc.SetStatus(ctx, "b-1", entity.BookingAccepted); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition from %s, got %v", from, err)
			}
		}
	})

	t.Run("accept broadcasts the update", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(existing(entity.BookingPending), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entity.BookingAccepted).Return(nil)
		m.publisher.EXPECT().Publish(entity.EventBookingStatusUpdate, gomock.Any())

		b, err := uc.SetStatus(ctx, "b-1", entity.BookingAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entity.BookingAccepted {
			t.Fatalf("expected accepted, got %q", b.Status)
		}
	})

	t.Run("reject sends exactly one rejection notice", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(existing(entity.BookingPending), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entity.BookingRejected).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mail *repository.Mail) error {
				if mail.To != "ravi@example.com" {
					t.Errorf("rejection notice should go to the customer, got %q", mail.To)
				}
				return nil
			}).Times(1)
		m.publisher.EXPECT().Publish(entity.EventBookingStatusUpdate, gomock.Any())

		if _, err := uc.SetStatus(ctx, "b-1", entity.BookingRejected); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("complete arms archival exactly once", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(existing(entity.BookingAccepted), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entity.BookingCompleted).Return(nil)
		m.scheduler.EXPECT().Arm(gomock.Any(), "b-1").Return(nil).Times(1)
		m.publisher.EXPECT().Publish(entity.EventBookingStatusUpdate, gomock.Any())

		if _, err := uc.SetStatus(ctx, "b-1", entity.BookingCompleted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("arm failure does not fail the transition", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(existing(entity.BookingAccepted), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entity.BookingCompleted).Return(nil)
		m.scheduler.EXPECT().Arm(gomock.Any(), "b-1").Return(errors.New("pg down"))
		m.publisher.EXPECT().Publish(entity.EventBookingStatusUpdate, gomock.Any())

		if _, err := uc.SetStatus(ctx, "b-1", entity.BookingCompleted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_SetPaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown payment status", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		if _, err := uc.SetPaymentStatus(ctx, "b-1", "refunded"); !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("every write broadcasts, repeats included", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		b := validBooking()
		b.ID = "b-1"
		b.Status = entity.BookingAccepted

		m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(b, nil).Times(2)
		m.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "b-1", entity.PaymentCompleted).Return(nil).Times(2)
		m.publisher.EXPECT().Publish(entity.EventPaymentStatusUpdate, gomock.Any()).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := uc.SetPaymentStatus(ctx, "b-1", entity.PaymentCompleted); err != nil {
				t.Fatalf("write %d: unexpected error: %v", i+1, err)
			}
		}
	})

	t.Run("independent of booking status machine", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		b := validBooking()
		b.ID = "b-1"
		b.Status = entity.BookingCancelled
		b.PaymentStatus = entity.PaymentCompleted

		m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(b, nil)
		m.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "b-1", entity.PaymentFailed).Return(nil)
		m.publisher.EXPECT().Publish(entity.EventPaymentStatusUpdate, gomock.Any())

		if _, err := uc.SetPaymentStatus(ctx, "b-1", entity.PaymentFailed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("allowed from pending and accepted", func(t *testing.T) {
		for _, from := range []string{entity.BookingPending, entity.BookingAccepted} {
			uc, m := newBookingUseCase(t)
			b := validBooking()
			b.ID = "b-1"
			b.Status = from

			m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(b, nil)
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entity.BookingCancelled).Return(nil)
			m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			m.publisher.EXPECT().Publish(entity.EventBookingStatusUpdate, gomock.Any())

			if err := uc.Cancel(ctx, "b-1"); err != nil {
				t.Fatalf("cancel from %s: unexpected error: %v", from, err)
			}
		}
	})

	t.Run("rejected from terminal statuses", func(t *testing.T) {
		for _, from := range []string{entity.BookingRejected, entity.BookingCompleted, entity.BookingCancelled} {
			uc, m := newBookingUseCase(t)
			b := validBooking()
			b.ID = "b-1"
			b.Status = from

			m.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(b, nil)

			if err := uc.Cancel(ctx, "b-1"); !errors.Is(err, ErrCancelNotAllowed) {
				t.Fatalf("cancel from %s: expected ErrCancelNotAllowed, got %v", from, err)
			}
		}
	})
}

func TestBookingUseCase_Reply(t *testing.T) {
	ctx := context.Background()

	t.Run("empty reply", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		if err := uc.Reply(ctx, "b-1", "   "); !errors.Is(err, ErrEmptyReply) {
			t.Fatalf("expected ErrEmptyReply, got %v", err)
		}
	})

	t.Run("last write wins, each broadcast", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().UpdateReply(gomock.Any(), "b-1", "first").Return(nil)
		m.repo.EXPECT().UpdateReply(gomock.Any(), "b-1", "second").Return(nil)
		m.publisher.EXPECT().Publish(entity.EventAdminReplyUpdate, gomock.Any()).Times(2)

		if err := uc.Reply(ctx, "b-1", "first"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Reply(ctx, "b-1", "second"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().UpdateReply(gomock.Any(), "nope", "hello").Return(repository.ErrNotFound)
		if err := uc.Reply(ctx, "nope", "hello"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}
