// Package mailer forwards contact form submissions by email.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("mailer: SMTP credentials not configured")

// Contact is one form submission.
type Contact struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Message string
}

// Sender delivers a contact submission.
type Sender interface {
	Send(ctx context.Context, c Contact) error
}

type Config struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// SMTP sends mail through an authenticated SMTP relay.
type SMTP struct {
	cfg      Config
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg Config) *SMTP {
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &SMTP{cfg: cfg, sendMail: smtp.SendMail}
}

// Send composes and sends the notification email for c.
func (s *SMTP) Send(ctx context.Context, c Contact) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := Compose(s.cfg.User, s.cfg.To, c)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)

	if err := s.sendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	log.Info().Str("name", c.Name).Msg("contact email sent")
	return nil
}

// Compose builds the RFC 5322 message for c. Header values are stripped of line breaks.
func Compose(from, to string, c Contact) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", header(to))
	fmt.Fprintf(&b, "Subject: Portfolio Contact: %s\r\n", header(c.Name))
	fmt.Fprintf(&b, "From: %s\r\n", header(from))
	fmt.Fprintf(&b, "Reply-To: %s\r\n", header(c.Email))
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")

	b.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", c.Name)
	if c.Company != "" {
		fmt.Fprintf(&b, "Company: %s\r\n", c.Company)
	}
	fmt.Fprintf(&b, "Email: %s\r\n", c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\r\n", c.Phone)
	}
	fmt.Fprintf(&b, "Message:\r\n%s\r\n\r\n---\r\nSent from your portfolio contact form\r\n", c.Message)
	return []byte(b.String())
}

func header(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}
