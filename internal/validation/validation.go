package validation

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]{8,20}$`)
)

// Result holds the outcome of a single field check
type Result struct {
	Valid   bool
	Message string
}

// Required validates that a field is not empty after trimming
func Required(value, fieldName string) Result {
	if strings.TrimSpace(value) == "" {
		return Result{Valid: false, Message: fieldName + " is required"}
	}
	return Result{Valid: true}
}

// Email validates an email address
func Email(email string) Result {
	if !emailRegex.MatchString(email) {
		return Result{Valid: false, Message: "Please enter a valid email address"}
	}
	return Result{Valid: true}
}

// Phone validates a phone number. An empty value is valid since the
// field is optional.
func Phone(phone string) Result {
	if strings.TrimSpace(phone) == "" {
		return Result{Valid: true}
	}
	if !phoneRegex.MatchString(phone) {
		return Result{Valid: false, Message: "Please enter a valid phone number"}
	}
	return Result{Valid: true}
}

// InquiryPayload is the candidate contact form submission
type InquiryPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Inquiry runs every field check independently and returns one error
// message per failing field, keyed by field name. The payload is valid
// only when the returned map is empty.
func Inquiry(p InquiryPayload) map[string]string {
	errors := make(map[string]string)

	if r := Required(p.Name, "Name"); !r.Valid {
		errors["name"] = r.Message
	}
	if r := Email(p.Email); !r.Valid {
		errors["email"] = r.Message
	}
	if r := Required(p.Message, "Message"); !r.Valid {
		errors["message"] = r.Message
	}
	if r := Phone(p.Phone); !r.Valid {
		errors["phone"] = r.Message
	}

	return errors
}
