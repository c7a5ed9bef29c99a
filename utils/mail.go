package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SMTPMailer sends HTML email through the SMTP relay configured in the
// environment (FROM_EMAIL, FROM_EMAIL_PASSWORD, FROM_EMAIL_SMTP,
// SMTP_ADDRESS).
type SMTPMailer struct{}

func (SMTPMailer) Send(to, subject, htmlBody string) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		to,
		subject,
		htmlBody,
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
