package services

import (
	"fmt"
	"net/smtp"

	"sarthakenterprise/internal/config"
	"sarthakenterprise/internal/domain"
)

// EmailService handles sending emails
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Email is a composed message ready for dispatch
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// ComposeOperatorNotification builds the notification email sent to the
// business on a new inquiry. Absent optional fields are rendered as
// "Not provided".
func (s *EmailService) ComposeOperatorNotification(inquiry *domain.Inquiry) Email {
	subject := fmt.Sprintf("New Contact Form Submission from %s", inquiry.Name)

	phoneInfo := "Not provided"
	if inquiry.Phone != "" {
		phoneInfo = inquiry.Phone
	}
	companyInfo := "Not provided"
	if inquiry.Company != "" {
		companyInfo = inquiry.Company
	}
	submitted := inquiry.CreatedAt.Format("January 2, 2006 at 3:04 PM")

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Contact Form Submission</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #059669;">New Contact Form Submission</h2>

        <div style="background: #F9FAFB; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Name:</strong> %s</p>
            <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
            <p><strong>Phone:</strong> %s</p>
            <p><strong>Company:</strong> %s</p>
            <p><strong>Submitted:</strong> %s</p>
        </div>

        <div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #059669; border-radius: 4px; margin: 20px 0;">
            <h3 style="color: #111827; margin-top: 0;">Message:</h3>
            <p style="white-space: pre-wrap;">%s</p>
        </div>

        <p style="color: #6B7280; font-size: 14px;">
            Inquiry Reference: %s
        </p>
    </div>
</body>
</html>`, inquiry.Name, inquiry.Email, inquiry.Email, phoneInfo, companyInfo, submitted, inquiry.Message, inquiry.Reference)

	textBody := fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s
Phone: %s
Company: %s
Submitted: %s

Message:
%s

Inquiry Reference: %s`, inquiry.Name, inquiry.Email, phoneInfo, companyInfo, submitted, inquiry.Message, inquiry.Reference)

	return Email{
		To:      s.cfg.NotifyTo,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	}
}

// ComposeAutoResponse builds the acknowledgment email addressed to the
// submitter.
func (s *EmailService) ComposeAutoResponse(name, email string) Email {
	subject := "Thank you for contacting Sarthak Enterprise"

	textBody := fmt.Sprintf(`Dear %s,

Thank you for contacting Sarthak Enterprise. We have received your inquiry and our team will get back to you as soon as possible.

For urgent matters, please contact us directly via WhatsApp or phone.

Best regards,
The Sarthak Enterprise Team`, name)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Thank you for contacting Sarthak Enterprise</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #059669;">Thank you for contacting Sarthak Enterprise</h2>
        <p>Dear %s,</p>
        <p>Thank you for contacting Sarthak Enterprise. We have received your inquiry and our team will get back to you as soon as possible.</p>
        <p>For urgent matters, please contact us directly via WhatsApp or phone.</p>
        <p>Best regards,<br>The Sarthak Enterprise Team</p>
    </div>
</body>
</html>`, name)

	return Email{
		To:      email,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	}
}

// Send dispatches a composed email
func (s *EmailService) Send(email Email) error {
	return s.SendHTMLEmail(email.To, email.Subject, email.HTML, email.Text)
}

// SendHTMLEmail sends an HTML email with plain text fallback
func (s *EmailService) SendHTMLEmail(to, subject, htmlBody, textBody string) error {
	if !s.cfg.Enabled {
		fmt.Printf("[EMAIL] Would send to %s: %s\n", to, subject)
		return nil
	}

	// Validate configuration
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	// Set up authentication
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	// Create email message
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	// Build multipart message
	boundary := "----=_NextPart_1234567890"

	headers := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n"

	// Plain text part
	message := headers +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		textBody + "\r\n"

	// HTML part (if provided)
	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"Content-Transfer-Encoding: quoted-printable\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	// Send email
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsEnabled returns whether email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled
}
