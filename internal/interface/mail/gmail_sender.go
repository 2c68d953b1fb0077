package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/prkservices/booking-service/internal/domain/repository"
	"github.com/prkservices/booking-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender sends transactional email through the Gmail API
type GmailSender struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewGmailSender creates a new Gmail sender
func NewGmailSender(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (*GmailSender, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailSender{
		gmailService: service,
		from:         from,
		logger:       logger,
	}, nil
}

var _ repository.Mailer = (*GmailSender)(nil)

// Send builds an RFC 2822 message and submits it via the Gmail API
func (s *GmailSender) Send(ctx context.Context, m *repository.Mail) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.HTMLBody)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(b.String())),
	}

	_, err := s.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		s.logger.Error("Failed to send email", "to", m.To, "subject", m.Subject, "error", err)
		return err
	}

	s.logger.Debug("Email sent", "to", m.To, "subject", m.Subject)
	return nil
}
