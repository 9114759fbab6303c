package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	"sarthakenterprise/internal/config"
	"sarthakenterprise/internal/database"
	"sarthakenterprise/internal/domain"
	"sarthakenterprise/internal/validation"
	apperrors "sarthakenterprise/pkg/errors"
)

type fakeNotifier struct {
	sent    []Email
	failAll bool
}

func (f *fakeNotifier) ComposeOperatorNotification(inquiry *domain.Inquiry) Email {
	return Email{To: "ops@example.com", Subject: "New Contact Form Submission from " + inquiry.Name}
}

func (f *fakeNotifier) ComposeAutoResponse(name, email string) Email {
	return Email{To: email, Subject: "Thank you for contacting Sarthak Enterprise"}
}

func (f *fakeNotifier) Send(email Email) error {
	f.sent = append(f.sent, email)
	if f.failAll {
		return errors.New("smtp unavailable")
	}
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(&config.DatabaseConfig{URL: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func TestSubmitSuccess(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewContactService(db, notifier, "8266815617")

	result, err := svc.Submit(context.Background(), validation.InquiryPayload{
		Name:    "Ana",
		Email:   "Ana@X.com",
		Message: "Need a quote",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Reference == "" {
		t.Fatal("expected a non-empty reference")
	}
	if result.Message != "Thank you for your message! We will get back to you soon." {
		t.Fatalf("unexpected confirmation message: %q", result.Message)
	}
	if !strings.HasPrefix(result.WhatsAppURL, "https://wa.me/8266815617?text=") {
		t.Fatalf("unexpected whatsapp url: %s", result.WhatsAppURL)
	}

	var saved domain.Inquiry
	if err := db.First(&saved).Error; err != nil {
		t.Fatalf("expected one persisted inquiry: %v", err)
	}
	if saved.Email != "ana@x.com" {
		t.Fatalf("expected normalized email, got %q", saved.Email)
	}
	if saved.Phone != "" {
		t.Fatalf("expected empty phone default, got %q", saved.Phone)
	}
	if saved.IsRead {
		t.Fatal("expected IsRead to default to false")
	}
	if saved.Reference != result.Reference {
		t.Fatalf("reference mismatch: %q vs %q", saved.Reference, result.Reference)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 email sends, got %d", len(notifier.sent))
	}
	if notifier.sent[0].To != "ops@example.com" {
		t.Fatalf("expected operator notification first, got %q", notifier.sent[0].To)
	}
	if notifier.sent[1].To != "ana@x.com" {
		t.Fatalf("expected auto-response to customer, got %q", notifier.sent[1].To)
	}
}

func TestSubmitValidationFailure(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewContactService(db, notifier, "8266815617")

	_, err := svc.Submit(context.Background(), validation.InquiryPayload{
		Name:    "",
		Email:   "bad",
		Message: "",
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 3 {
		t.Fatalf("expected 3 failing fields, got %v", vErr.Fields)
	}
	if vErr.Fields["name"] != "Name is required" ||
		vErr.Fields["email"] != "Please enter a valid email address" ||
		vErr.Fields["message"] != "Message is required" {
		t.Fatalf("unexpected field messages: %v", vErr.Fields)
	}

	var count int64
	db.Model(&domain.Inquiry{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected zero persisted inquiries, got %d", count)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("expected zero email sends, got %d", len(notifier.sent))
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewContactService(db, notifier, "8266815617")

	// Close the underlying connection so the write fails
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.Close()

	_, err = svc.Submit(context.Background(), validation.InquiryPayload{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Need a quote",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !apperrors.IsPersistence(err) {
		t.Fatalf("expected a persistence error, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("expected zero email sends after failed write, got %d", len(notifier.sent))
	}
}

func TestSubmitSucceedsWhenEmailFails(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{failAll: true}
	svc := NewContactService(db, notifier, "8266815617")

	result, err := svc.Submit(context.Background(), validation.InquiryPayload{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Need a quote",
	})
	if err != nil {
		t.Fatalf("email failure must not fail the submission: %v", err)
	}
	if result == nil || result.Reference == "" {
		t.Fatal("expected a successful result")
	}

	// The record is durable even though both sends failed
	var count int64
	db.Model(&domain.Inquiry{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one persisted inquiry, got %d", count)
	}
	if len(notifier.sent) != 2 {
		t.Fatalf("expected both sends to be attempted, got %d", len(notifier.sent))
	}
}
