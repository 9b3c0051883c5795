package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"eksemail/internal/domain/notification"

	mail "github.com/go-mail/mail"
)

var _ notification.Provider = (*SMTPProvider)(nil)

// SMTPProvider sends emails through an authenticated SMTP relay. Each Send
// opens one connection, delivers one message, and closes the connection —
// DialAndSend releases it on every exit path, success or failure. There is no
// pooling; transactional volume is low and simplicity wins.
type SMTPProvider struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPProvider creates a new SMTP provider. from is the display identity
// used on every message, e.g. "Eksejabula <noreply@eksejabula.com>".
func NewSMTPProvider(host string, port int, username, password, from string) *SMTPProvider {
	return &SMTPProvider{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Name returns the provider identifier.
func (p *SMTPProvider) Name() string {
	return "smtp"
}

// Send delivers one message over a transient authenticated connection.
// SMTP gives no message ID back, so one is synthesized for the delivery log.
func (p *SMTPProvider) Send(ctx context.Context, msg *notification.Message) (string, error) {
	m := mail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := mail.NewDialer(p.host, p.port, p.username, p.password)
	d.TLSConfig = &tls.Config{
		ServerName: p.host,
		MinVersion: tls.VersionTLS12,
	}

	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}

	return fmt.Sprintf("%d@%s", time.Now().UnixNano(), p.host), nil
}
