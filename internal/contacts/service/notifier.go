package service

import (
	"context"

	"property_catalog_backend/internal/email"
	"property_catalog_backend/internal/events"
	"property_catalog_backend/platform/logger"
)

// Notifier emails the inquiry inbox when a contact is submitted.
type Notifier struct {
	sender email.Sender
	inbox  string
	log    *logger.Logger
}

// NewNotifier creates a notifier. An empty inbox disables delivery.
func NewNotifier(sender email.Sender, inbox string, log *logger.Logger) *Notifier {
	return &Notifier{sender: sender, inbox: inbox, log: log}
}

// Handle implements events.Handler.
func (n *Notifier) Handle(ctx context.Context, event events.Event) error {
	e, ok := event.(events.ContactSubmitted)
	if !ok || n.inbox == "" {
		return nil
	}

	inquiry := email.ContactInquiry{
		Name:    e.Name,
		Email:   e.Email,
		Phone:   e.Phone,
		Message: e.Message,
	}
	if e.ListingID != nil {
		inquiry.ListingID = e.ListingID.String()
	}

	if err := n.sender.SendContactInquiryEmail(ctx, n.inbox, inquiry); err != nil {
		n.log.Error("contact notification failed", "contactId", e.ContactID, "error", err)
		return err
	}
	n.log.Info("contact notification sent", "contactId", e.ContactID)
	return nil
}
