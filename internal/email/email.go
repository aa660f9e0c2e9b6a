// Package email delivers transactional mail such as password reset links.
package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/logger"
)

// Message is a plain-text email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender returns an SMTP sender when a host is configured, otherwise a
// sender that only logs.
func NewSender(cfg config.SMTP) Sender {
	if cfg.Host == "" {
		logger.Warn("SMTP_HOST not set, emails will only be logged")
		return LogSender{}
	}
	return &SMTPSender{cfg: cfg}
}

// SMTPSender sends through an SMTP relay with PLAIN auth.
type SMTPSender struct {
	cfg config.SMTP
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{msg.To}, Format(s.cfg.From, msg, time.Now())); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	logger.Info("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

// Format renders msg as an RFC 5322 message.
func Format(from string, msg Message, date time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// LogSender writes messages to the log. Used in development.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	logger.Info("email (not sent)", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}

// RecordingSender keeps messages in memory for tests.
type RecordingSender struct {
	mu   sync.Mutex
	sent []Message
	Err  error
}

func (r *RecordingSender) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *RecordingSender) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.sent...)
}

// PasswordResetMessage builds the reset email for link.
func PasswordResetMessage(to, userName, link string, validFor time.Duration) Message {
	body := fmt.Sprintf(`Hello %s,

We received a request to reset your password. Open the link below to choose a new one:

%s

The link is valid for %s. If you did not ask for a reset, you can ignore this email.
`, userName, link, validFor.Round(time.Minute))

	return Message{
		To:      to,
		Subject: "Reset your password",
		Body:    body,
	}
}
