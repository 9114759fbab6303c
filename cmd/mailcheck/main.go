package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"sarthakenterprise/internal/config"
	"sarthakenterprise/internal/domain"
	"sarthakenterprise/internal/services"
)

// mailcheck sends a test operator notification using the SMTP settings
// from the environment, so a deployment can be verified without
// submitting the public form.
func main() {
	to := flag.String("to", "", "override the recipient address (defaults to EMAIL_TO)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Email.Enabled {
		log.Fatal("EMAIL_ENABLED is false; nothing to check")
	}

	emailSvc := services.NewEmailService(&cfg.Email)

	inquiry := &domain.Inquiry{
		Reference: "mailcheck",
		Name:      "Mail Check",
		Email:     cfg.Email.FromEmail,
		Message:   "This is a test notification verifying the SMTP configuration.",
		CreatedAt: time.Now().UTC(),
	}

	email := emailSvc.ComposeOperatorNotification(inquiry)
	if *to != "" {
		email.To = *to
	}

	fmt.Printf("Sending test notification to %s via %s:%d...\n", email.To, cfg.Email.SMTPHost, cfg.Email.SMTPPort)
	if err := emailSvc.Send(email); err != nil {
		log.Fatalf("Send failed: %v", err)
	}
	fmt.Println("Test notification sent successfully!")
}
