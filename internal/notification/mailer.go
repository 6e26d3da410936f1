// Package notification sends plain-text emails and keeps a log of every one sent.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sysmayal-backend/internal/config"
	"sysmayal-backend/internal/logger"

	"github.com/wneessen/go-mail"
)

// Message is one outgoing plain-text email
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer delivers messages
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer returns an SMTP mailer when SMTP_HOST is set, otherwise a mailer that only logs
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return NewLogMailer()
	}
	m, err := NewSMTPMailer(SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
	if err != nil {
		logger.ForComponent("mailer").WithError(err).Warn("SMTP mailer unavailable, falling back to logging")
		return NewLogMailer()
	}
	return m
}

// SMTPConfig holds the outgoing mail server settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type deliverer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer sends messages through an SMTP relay
type SMTPMailer struct {
	from   string
	client deliverer
	now    func() time.Time
}

// NewSMTPMailer creates a mailer for the given relay; PLAIN auth is used when a username is set
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(30 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return &SMTPMailer{from: cfg.From, client: client, now: time.Now}, nil
}

// Send delivers msg to every recipient in one SMTP transaction
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := m.compose(msg)
	if err != nil {
		return err
	}
	return m.client.DialAndSendWithContext(ctx, out)
}

func (m *SMTPMailer) compose(msg Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := out.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetDateWithValue(m.now())
	out.SetBodyString(mail.TypeTextPlain, msg.Body)
	return out, nil
}

// LogMailer writes messages to the log instead of sending them
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer creates a log-only mailer
func NewLogMailer() *LogMailer {
	return &LogMailer{log: logger.ForComponent("mailer")}
}

// Send logs msg
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}
	m.log.WithFields(map[string]interface{}{
		"to":      strings.Join(msg.To, ","),
		"subject": msg.Subject,
	}).Info("Mail delivery disabled, message logged")
	return nil
}
