package services

import (
	"context"
	"log"
	"strings"

	"gorm.io/gorm"

	"sarthakenterprise/internal/domain"
	"sarthakenterprise/internal/metrics"
	"sarthakenterprise/internal/validation"
	"sarthakenterprise/internal/whatsapp"
)

// Notifier dispatches notification emails for new inquiries
type Notifier interface {
	ComposeOperatorNotification(inquiry *domain.Inquiry) Email
	ComposeAutoResponse(name, email string) Email
	Send(email Email) error
}

// ContactService implements the contact form submission flow
type ContactService struct {
	db             *gorm.DB
	notifier       Notifier
	whatsAppNumber string
}

// NewContactService creates a new contact service
func NewContactService(db *gorm.DB, notifier Notifier, whatsAppNumber string) *ContactService {
	return &ContactService{
		db:             db,
		notifier:       notifier,
		whatsAppNumber: whatsAppNumber,
	}
}

// SubmitResult is returned to the caller on a successful submission
type SubmitResult struct {
	Reference   string
	Message     string
	WhatsAppURL string
}

// Submit validates, persists and dispatches notifications for a contact
// form submission. The database write is the only durable effect; both
// email sends are best-effort and never fail the submission once the
// record is saved.
func (s *ContactService) Submit(ctx context.Context, p validation.InquiryPayload) (*SubmitResult, error) {
	log.Printf("[CONTACT] Submit request: name=%s, email=%s", strings.TrimSpace(p.Name), strings.TrimSpace(p.Email))

	// Validate input. All checks run independently so every failing
	// field is reported at once.
	if errs := validation.Inquiry(p); len(errs) > 0 {
		log.Printf("[CONTACT] Submit failed: validation errors on %d field(s)", len(errs))
		metrics.RecordValidationFailure()
		return nil, &ValidationError{Fields: errs}
	}

	// Create inquiry record
	inquiry := &domain.Inquiry{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:   strings.TrimSpace(p.Phone),
		Company: strings.TrimSpace(p.Company),
		Message: strings.TrimSpace(p.Message),
	}

	// Save to database
	err := s.db.WithContext(ctx).Create(inquiry).Error
	metrics.RecordDBWrite(err)
	if err != nil {
		log.Printf("[CONTACT] Submit failed: database error: %v", err)
		return nil, NewPersistenceError(err)
	}

	log.Printf("[CONTACT] Submit successful: reference=%s, name=%s, email=%s", inquiry.Reference, inquiry.Name, inquiry.Email)
	metrics.RecordInquiry()

	// Send email notification to the operator. The record is already
	// durable, so a dispatch failure is logged and the submission still
	// succeeds.
	if err := s.notifier.Send(s.notifier.ComposeOperatorNotification(inquiry)); err != nil {
		metrics.RecordEmailSend("operator", err)
		log.Printf("[CONTACT] Warning: %v", NewNotificationError("operator notification", err))
	} else {
		metrics.RecordEmailSend("operator", nil)
		log.Printf("[CONTACT] Notification email sent for inquiry reference=%s", inquiry.Reference)
	}

	// Auto-response to the customer, best effort. The result is not
	// inspected beyond metrics and logging.
	if err := s.notifier.Send(s.notifier.ComposeAutoResponse(inquiry.Name, inquiry.Email)); err != nil {
		metrics.RecordEmailSend("autoresponse", err)
		log.Printf("[CONTACT] Warning: %v", NewNotificationError("auto-response", err))
	} else {
		metrics.RecordEmailSend("autoresponse", nil)
	}

	return &SubmitResult{
		Reference:   inquiry.Reference,
		Message:     "Thank you for your message! We will get back to you soon.",
		WhatsAppURL: whatsapp.InquiryLink(s.whatsAppNumber, inquiry),
	}, nil
}
