// Package email delivers outbound notifications.
package email

import (
	"context"

	"property_catalog_backend/platform/config"
)

// ContactInquiry is the content of a contact notification.
type ContactInquiry struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	ListingID string
}

type Sender interface {
	SendContactInquiryEmail(ctx context.Context, toEmail string, inquiry ContactInquiry) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

type NoopSender struct{}

func (NoopSender) SendContactInquiryEmail(ctx context.Context, toEmail string, inquiry ContactInquiry) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}

// NewSender returns an SMTP sender when email is enabled and a NoopSender otherwise.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() || cfg.GetSMTPHost() == "" {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}
