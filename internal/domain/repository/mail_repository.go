package repository

import "context"

// Mail is a single outbound email
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer defines the interface for outbound transactional email.
// Delivery is best-effort; callers log failures and move on.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
