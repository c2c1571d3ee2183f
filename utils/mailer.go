package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer delivers outbound email. Delivery failures are treated as
// non-fatal by callers: the account is still created, the response message
// just changes.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	headers := []string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogMailer is used when SMTP is not configured so local runs still work.
type LogMailer struct{}

func (LogMailer) Send(to, subject, _ string) error {
	log.Printf("mailer disabled, dropping email to %s: %s", to, subject)
	return nil
}
