// Package mailer delivers the Arabic notification emails triggered by
// contact and testimonial submissions.
package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"kayan/internal/config"

	"github.com/rs/zerolog/log"
)

// Mailer sends one HTML email
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// NewMailer returns an SMTP-backed mailer when mail is enabled, otherwise a
// log-only stand-in so the notification flow stays exercised in development
func NewMailer(cfg *config.MailConfig) Mailer {
	if !cfg.Enabled {
		log.Info().Msg("Mail disabled, notifications will be logged only")
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

// SMTPMailer sends mail through a plain-auth SMTP relay
type SMTPMailer struct {
	cfg *config.MailConfig
}

// Send delivers one message. Blocks until the relay accepts or refuses it.
func (m *SMTPMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := buildMessage(m.cfg.From, to, subject, htmlBody)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg)
}

// buildMessage assembles the raw RFC 5322 message. The subject is Q-encoded
// because it is Arabic.
func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", from)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// LogMailer records the send to the application log and delivers nothing
type LogMailer struct{}

// Send logs the would-be delivery
func (m *LogMailer) Send(_ context.Context, to, subject, _ string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("Mail disabled, skipping delivery")
	return nil
}
