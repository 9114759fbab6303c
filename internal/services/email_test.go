package services

import (
	"strings"
	"testing"
	"time"

	"sarthakenterprise/internal/config"
	"sarthakenterprise/internal/domain"
)

func testEmailConfig() *config.EmailConfig {
	return &config.EmailConfig{
		Enabled:   false,
		FromEmail: "noreply@sarthakenterprise.com",
		FromName:  "Sarthak Enterprise",
		NotifyTo:  "sales@sarthakenterprise.com",
	}
}

func TestComposeOperatorNotification(t *testing.T) {
	svc := NewEmailService(testEmailConfig())
	inquiry := &domain.Inquiry{
		Reference: "ref-123",
		Name:      "Ana",
		Email:     "ana@x.com",
		Message:   "Need a quote",
		CreatedAt: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
	}

	email := svc.ComposeOperatorNotification(inquiry)

	if email.To != "sales@sarthakenterprise.com" {
		t.Fatalf("expected operator recipient, got %q", email.To)
	}
	if email.Subject != "New Contact Form Submission from Ana" {
		t.Fatalf("unexpected subject: %q", email.Subject)
	}
	// Absent optional fields are rendered as "Not provided"
	if strings.Count(email.Text, "Not provided") != 2 {
		t.Fatalf("expected phone and company fallbacks in:\n%s", email.Text)
	}
	if !strings.Contains(email.Text, "Need a quote") || !strings.Contains(email.HTML, "Need a quote") {
		t.Fatal("expected message body in both parts")
	}
	if !strings.Contains(email.Text, "ref-123") {
		t.Fatal("expected inquiry reference in body")
	}
}

func TestComposeOperatorNotificationWithOptionals(t *testing.T) {
	svc := NewEmailService(testEmailConfig())
	inquiry := &domain.Inquiry{
		Reference: "ref-456",
		Name:      "Ana",
		Email:     "ana@x.com",
		Phone:     "+1 (234) 567-890",
		Company:   "Acme Fertilizers",
		Message:   "Need a quote",
		CreatedAt: time.Now().UTC(),
	}

	email := svc.ComposeOperatorNotification(inquiry)

	if strings.Contains(email.Text, "Not provided") {
		t.Fatalf("did not expect fallbacks in:\n%s", email.Text)
	}
	if !strings.Contains(email.Text, "+1 (234) 567-890") || !strings.Contains(email.Text, "Acme Fertilizers") {
		t.Fatalf("expected optional fields in:\n%s", email.Text)
	}
}

func TestComposeAutoResponse(t *testing.T) {
	svc := NewEmailService(testEmailConfig())

	email := svc.ComposeAutoResponse("Ana", "ana@x.com")

	if email.To != "ana@x.com" {
		t.Fatalf("expected customer recipient, got %q", email.To)
	}
	if email.Subject != "Thank you for contacting Sarthak Enterprise" {
		t.Fatalf("unexpected subject: %q", email.Subject)
	}
	if !strings.Contains(email.Text, "Dear Ana,") {
		t.Fatalf("expected salutation in:\n%s", email.Text)
	}
}

func TestSendDisabledIsNoop(t *testing.T) {
	svc := NewEmailService(testEmailConfig())

	err := svc.Send(Email{To: "ana@x.com", Subject: "test", Text: "test"})
	if err != nil {
		t.Fatalf("disabled send should succeed without a transport: %v", err)
	}
	if svc.IsEnabled() {
		t.Fatal("expected service to report disabled")
	}
}
