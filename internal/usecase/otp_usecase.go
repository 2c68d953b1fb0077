package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"
	"github.com/prkservices/booking-service/pkg/logger"
	"github.com/prkservices/booking-service/templates"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidOTP    = errors.New("invalid or expired OTP")
	ErrUserNotFound  = errors.New("user not found")
)

// OTPUseCase implements the passwordless login flow: a 6-digit code per
// email with a short expiry, consumed on verification. The user record is
// created on first successful verification.
type OTPUseCase struct {
	otpRepo    repository.OTPRepository
	userRepo   repository.UserRepository
	mailer     repository.Mailer
	adminEmail string
	ttl        time.Duration
	logger     logger.Logger

	now func() time.Time
}

// NewOTPUseCase creates a new OTP usecase
func NewOTPUseCase(
	otpRepo repository.OTPRepository,
	userRepo repository.UserRepository,
	mailer repository.Mailer,
	adminEmail string,
	ttl time.Duration,
	logger logger.Logger,
) *OTPUseCase {
	return &OTPUseCase{
		otpRepo:    otpRepo,
		userRepo:   userRepo,
		mailer:     mailer,
		adminEmail: adminEmail,
		ttl:        ttl,
		logger:     logger,
		now:        time.Now,
	}
}

// Generate stores a fresh code for the email and mails it out. Unlike the
// booking side effects, a failed delivery here fails the call: a code the
// customer never received is useless.
func (u *OTPUseCase) Generate(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	otp := &entity.OTP{
		Email:     email,
		Code:      code,
		ExpiresAt: u.now().Add(u.ttl),
	}
	if err := u.otpRepo.Upsert(ctx, otp); err != nil {
		return err
	}

	if err := u.mailer.Send(ctx, templates.OTPMail(email, code, int(u.ttl.Minutes()))); err != nil {
		return err
	}

	u.logger.Info("OTP generated", "email", email)
	return nil
}

// Verify consumes the code and returns the user, creating the account on
// first login. The admin flag is granted only to the configured admin
// email.
func (u *OTPUseCase) Verify(ctx context.Context, email, code string) (*entity.User, error) {
	otp, err := u.otpRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}
	if otp.Code != code || otp.Expired(u.now()) {
		return nil, ErrInvalidOTP
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		user = &entity.User{
			Email:   email,
			IsAdmin: u.adminEmail != "" && email == u.adminEmail,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := u.otpRepo.Delete(ctx, email); err != nil {
		u.logger.Error("Failed to delete consumed OTP", "email", email, "error", err)
	}
	if err := u.userRepo.TouchLastLogin(ctx, email, u.now()); err != nil {
		u.logger.Error("Failed to record last login", "email", email, "error", err)
	}

	u.logger.Info("OTP verified", "email", email, "isAdmin", user.IsAdmin)
	return user, nil
}

// Profile returns a user's profile
func (u *OTPUseCase) Profile(ctx context.Context, email string) (*entity.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile overwrites name and phone
func (u *OTPUseCase) UpdateProfile(ctx context.Context, email, name, phone string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	user, err := u.userRepo.UpdateProfile(ctx, email, name, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// generateCode draws a 6-digit code from crypto/rand
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
