package repository

import (
	"context"
	"time"

	"github.com/prkservices/booking-service/internal/domain/entity"
)

// UserRepository defines the interface for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, email, name, phone string) (*entity.User, error)
	TouchLastLogin(ctx context.Context, email string, at time.Time) error
}

// OTPRepository defines the interface for pending one-time passcodes
type OTPRepository interface {
	Upsert(ctx context.Context, otp *entity.OTP) error
	FindByEmail(ctx context.Context, email string) (*entity.OTP, error)
	Delete(ctx context.Context, email string) error
}
