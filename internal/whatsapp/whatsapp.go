package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"sarthakenterprise/internal/domain"
)

// DeepLink builds a wa.me URL that opens a chat with the given number and
// a pre-filled, URL-encoded message.
func DeepLink(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// InquiryMessage renders the templated chat message carrying the
// submitted inquiry fields. Optional fields are omitted when absent.
func InquiryMessage(inquiry *domain.Inquiry) string {
	var b strings.Builder
	b.WriteString("Hello, I just submitted an inquiry on your website.\n")
	b.WriteString("Name: ")
	b.WriteString(inquiry.Name)
	b.WriteString("\nEmail: ")
	b.WriteString(inquiry.Email)
	if inquiry.Phone != "" {
		b.WriteString("\nPhone: ")
		b.WriteString(inquiry.Phone)
	}
	if inquiry.Company != "" {
		b.WriteString("\nCompany: ")
		b.WriteString(inquiry.Company)
	}
	b.WriteString("\nMessage: ")
	b.WriteString(inquiry.Message)
	return b.String()
}

// InquiryLink builds the deep link for an inquiry against the public
// contact number.
func InquiryLink(number string, inquiry *domain.Inquiry) string {
	return DeepLink(number, InquiryMessage(inquiry))
}
