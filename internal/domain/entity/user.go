package entity

import "time"

// User is a customer account created on first OTP verification
type User struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	Email      string     `bson:"email" json:"email"`
	Name       string     `bson:"name,omitempty" json:"name,omitempty"`
	Phone      string     `bson:"phone,omitempty" json:"phone,omitempty"`
	IsVerified bool       `bson:"isVerified" json:"isVerified"`
	IsAdmin    bool       `bson:"isAdmin" json:"isAdmin"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	LastLogin  *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

// OTP is a one-time passcode pending verification, one per email
type OTP struct {
	Email     string    `bson:"email"`
	Code      string    `bson:"otp"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

// Expired reports whether the code is past its expiry
func (o *OTP) Expired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}
