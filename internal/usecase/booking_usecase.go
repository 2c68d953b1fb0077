package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"
	"github.com/prkservices/booking-service/pkg/logger"
	"github.com/prkservices/booking-service/pkg/metrics"
	"github.com/prkservices/booking-service/templates"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrMissingCustomerEmail = errors.New("customer email is required")
	ErrNoServices           = errors.New("at least one service is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrTotalMismatch        = errors.New("total amount does not match line totals")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("illegal status transition")
	ErrEmptyReply           = errors.New("reply text cannot be empty")
	ErrCancelNotAllowed     = errors.New("cannot cancel this booking in its current status")
)

// ArchivalScheduler arms a deferred archival for a booking id
type ArchivalScheduler interface {
	Arm(ctx context.Context, bookingID string) error
}

// IBookingUseCase is the status transition service plus the booking
// read/create operations behind the REST endpoints.
type IBookingUseCase interface {
	Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	ListAll(ctx context.Context) ([]*entity.Booking, error)
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	SetStatus(ctx context.Context, id, status string) (*entity.Booking, error)
	SetPaymentStatus(ctx context.Context, id, paymentStatus string) (*entity.Booking, error)
	Cancel(ctx context.Context, id string) error
	Reply(ctx context.Context, id, text string) error
}

// BookingUseCase coordinates the booking store with its side effects:
// email, the admin notification log, the realtime hub and the archival
// scheduler. Side effects run after the persisted write and never fail
// the primary mutation.
type BookingUseCase struct {
	bookingRepo      repository.BookingRepository
	notificationRepo repository.NotificationRepository
	mailer           repository.Mailer
	publisher        repository.EventPublisher
	scheduler        ArchivalScheduler
	adminEmail       string
	logger           logger.Logger
	metrics          *metrics.Metrics
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

// NewBookingUseCase creates a new booking usecase
func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	notificationRepo repository.NotificationRepository,
	mailer repository.Mailer,
	publisher repository.EventPublisher,
	scheduler ArchivalScheduler,
	adminEmail string,
	logger logger.Logger,
	m *metrics.Metrics,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
		publisher:        publisher,
		scheduler:        scheduler,
		adminEmail:       adminEmail,
		logger:           logger,
		metrics:          m,
	}
}

// Create validates and persists a booking, then fires the creation side
// effects: confirmation emails, the admin notification record and the
// newBooking broadcast. The notification store is deliberately not kept
// consistent with the booking store; a failed notification write is
// logged and the booking stands.
func (u *BookingUseCase) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	if strings.TrimSpace(booking.CustomerEmail) == "" {
		return nil, ErrMissingCustomerEmail
	}
	if len(booking.Services) == 0 {
		return nil, ErrNoServices
	}
	if !entity.ValidPaymentMethod(booking.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = entity.PaymentPending
	}
	if !entity.ValidPaymentStatus(booking.PaymentStatus) {
		return nil, ErrInvalidPaymentStatus
	}
	if booking.Status == "" {
		booking.Status = entity.BookingPending
	}
	if !entity.ValidBookingStatus(booking.Status) {
		return nil, ErrInvalidStatus
	}
	if !booking.LineTotalsMatch() {
		return nil, ErrTotalMismatch
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	u.metrics.BookingsCreated.Inc()
	u.logger.Info("Booking created", "bookingId", booking.ID, "customerEmail", booking.CustomerEmail)

	u.sendMail(ctx, templates.AdminBookingMail(u.adminEmail, booking))
	u.sendMail(ctx, templates.CustomerConfirmationMail(booking))

	notification := u.buildNotification(booking)
	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		u.logger.Error("Failed to write admin notification", "bookingId", booking.ID, "error", err)
		u.metrics.ErrorsCount.WithLabelValues("notification_create").Inc()
	}

	u.publisher.Publish(entity.EventNewBooking, map[string]interface{}{
		"notification": notification,
		"message":      "New booking from " + booking.CustomerEmail,
	})

	return booking, nil
}

func (u *BookingUseCase) buildNotification(booking *entity.Booking) *entity.Notification {
	services := make([]entity.NotificationService, 0, len(booking.Services))
	for _, s := range booking.Services {
		services = append(services, entity.NotificationService{
			Name:        s.ServiceName,
			Price:       s.Price,
			Quantity:    s.Quantity,
			BookingDate: booking.CreatedAt,
		})
	}
	return &entity.Notification{
		Email:       booking.CustomerEmail,
		Services:    services,
		TotalAmount: booking.TotalAmount,
		Status:      entity.NotificationPending,
		CreatedAt:   booking.CreatedAt,
	}
}

// ListByCustomerEmail returns a customer's bookings, newest first
func (u *BookingUseCase) ListByCustomerEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	return u.bookingRepo.FindByCustomerEmail(ctx, email)
}

// ListAll returns all active bookings, newest first
func (u *BookingUseCase) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	return u.bookingRepo.FindAll(ctx)
}

// GetByID returns one booking
func (u *BookingUseCase) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// SetStatus applies a status change after checking it against the
// transition table. On success it fires the status side effects: a
// rejection notice for rejected, archival arming for completed, and the
// bookingStatusUpdate broadcast in every case.
func (u *BookingUseCase) SetStatus(ctx context.Context, id, status string) (*entity.Booking, error) {
	if !entity.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	booking, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(booking.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := u.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	booking.Status = status
	u.metrics.StatusTransitions.WithLabelValues(status).Inc()
	u.logger.Info("Booking status updated", "bookingId", id, "status", status)

	if status == entity.BookingRejected {
		u.sendMail(ctx, templates.RejectionMail(booking))
	}

	if status == entity.BookingCompleted {
		if err := u.scheduler.Arm(ctx, id); err != nil {
			u.logger.Error("Failed to arm archival", "bookingId", id, "error", err)
			u.metrics.ErrorsCount.WithLabelValues("archival_arm").Inc()
		}
	}

	u.publisher.Publish(entity.EventBookingStatusUpdate, map[string]interface{}{
		"bookingId":     id,
		"status":        status,
		"customerEmail": booking.CustomerEmail,
	})

	return booking, nil
}

// SetPaymentStatus overwrites the payment status. It is independent of the
// booking status machine and may be repeated; every successful write is
// broadcast, without deduplication.
func (u *BookingUseCase) SetPaymentStatus(ctx context.Context, id, paymentStatus string) (*entity.Booking, error) {
	if !entity.ValidPaymentStatus(paymentStatus) {
		return nil, ErrInvalidPaymentStatus
	}

	booking, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.UpdatePaymentStatus(ctx, id, paymentStatus); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	booking.PaymentStatus = paymentStatus
	u.logger.Info("Payment status updated", "bookingId", id, "paymentStatus", paymentStatus)

	u.publisher.Publish(entity.EventPaymentStatusUpdate, map[string]interface{}{
		"bookingId":     id,
		"paymentStatus": paymentStatus,
		"customerEmail": booking.CustomerEmail,
	})

	return booking, nil
}

// Cancel is the customer-facing cancellation: legal only from pending or
// accepted. Cancellation notices go to both the admin and the customer.
func (u *BookingUseCase) Cancel(ctx context.Context, id string) error {
	booking, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != entity.BookingPending && booking.Status != entity.BookingAccepted {
		return ErrCancelNotAllowed
	}

	if err := u.bookingRepo.UpdateStatus(ctx, id, entity.BookingCancelled); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	booking.Status = entity.BookingCancelled
	u.metrics.StatusTransitions.WithLabelValues(entity.BookingCancelled).Inc()
	u.logger.Info("Booking cancelled", "bookingId", id)

	u.sendMail(ctx, templates.CancellationAdminMail(u.adminEmail, booking))
	u.sendMail(ctx, templates.CancellationCustomerMail(booking))

	u.publisher.Publish(entity.EventBookingStatusUpdate, map[string]interface{}{
		"bookingId": id,
		"status":    entity.BookingCancelled,
		"message":   "Booking cancelled by customer",
	})

	return nil
}

// Reply overwrites the admin reply on a booking, last write wins
func (u *BookingUseCase) Reply(ctx context.Context, id, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyReply
	}

	if err := u.bookingRepo.UpdateReply(ctx, id, text); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	u.logger.Info("Admin reply updated", "bookingId", id)

	u.publisher.Publish(entity.EventAdminReplyUpdate, map[string]interface{}{
		"bookingId": id,
		"reply":     text,
	})

	return nil
}

// sendMail delivers one notice and swallows the failure; the caller's
// mutation is already committed and must not be affected.
func (u *BookingUseCase) sendMail(ctx context.Context, m *repository.Mail) {
	if err := u.mailer.Send(ctx, m); err != nil {
		u.logger.Error("Failed to send email", "to", m.To, "subject", m.Subject, "error", err)
		u.metrics.EmailsFailed.Inc()
		return
	}
	u.metrics.EmailsSent.Inc()
}
