package email

import (
	"strings"
	"testing"
)

func TestRenderContactInquiryEscapesInput(t *testing.T) {
	subject, content, err := renderContactInquiry(ContactInquiry{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "New inquiry from Ada" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if strings.Contains(content, "<script>") {
		t.Fatalf("expected message to be escaped")
	}
	if !strings.Contains(content, "ada@example.com") {
		t.Fatalf("expected sender address in body")
	}
}

func TestRenderContactInquiryForListing(t *testing.T) {
	subject, content, err := renderContactInquiry(ContactInquiry{
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "Is it still available?",
		ListingID: "abc-123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "New inquiry about listing abc-123" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(content, "New listing inquiry") {
		t.Fatalf("expected listing heading in body")
	}
}

func TestBuildMessageRejectsBadRecipient(t *testing.T) {
	s := NewSMTPSender("smtp.example.com", 587, "", "", "noreply@example.com", "Catalog")
	if _, err := s.buildMessage("not an address", "hi", "<p>hi</p>"); err == nil {
		t.Fatalf("expected invalid recipient to fail")
	}
}

type disabledEmail struct{}

func (disabledEmail) GetEmailEnabled() bool       { return false }
func (disabledEmail) GetSMTPHost() string         { return "smtp.example.com" }
func (disabledEmail) GetSMTPPort() int            { return 587 }
func (disabledEmail) GetSMTPUsername() string     { return "" }
func (disabledEmail) GetSMTPPassword() string     { return "" }
func (disabledEmail) GetEmailFromName() string    { return "" }
func (disabledEmail) GetEmailFromAddress() string { return "" }

func TestNewSenderDisabledIsNoop(t *testing.T) {
	if _, ok := NewSender(disabledEmail{}).(NoopSender); !ok {
		t.Fatalf("expected NoopSender when email is disabled")
	}
}
