package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"obsidianiq-forms-api/pkg/logger"
)

// ErrNotConfigured is returned when sender or recipient addresses are missing.
var ErrNotConfigured = errors.New("email service is not configured")

// Message is a single plain-text notification.
type Message struct {
	From    string
	To      string
	ReplyTo string // optional
	Subject string
	Body    string
}

// Sender delivers a composed message. Implementations must not retry.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// UseTLS dials with implicit TLS (port 465 style). When false the
	// connection is upgraded with STARTTLS if the server offers it.
	UseTLS bool
}

// SMTPTransport sends mail over a fresh SMTP connection per message.
type SMTPTransport struct {
	cfg    SMTPConfig
	dialer *net.Dialer
	now    func() time.Time
}

// NewSMTPTransport creates a transport for the given server
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	return &SMTPTransport{
		cfg:    cfg,
		dialer: &net.Dialer{Timeout: 30 * time.Second},
		now:    time.Now,
	}
}

// IsConfigured checks if the transport has a host to talk to
func (t *SMTPTransport) IsConfigured() bool {
	return t.cfg.Host != ""
}

// Send delivers msg, honouring the context deadline for dial and I/O.
// The connection is always closed before returning.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	if !t.IsConfigured() || msg.From == "" || msg.To == "" {
		return ErrNotConfigured
	}

	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))
	conn, err := t.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to smtp server: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	tlsConfig := &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}
	if t.cfg.UseTLS {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer client.Close()

	if !t.cfg.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("failed to start tls: %w", err)
			}
		}
	}

	if t.cfg.Username != "" {
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp authentication failed: %w", err)
		}
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("smtp sender rejected: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp recipient rejected: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data command failed: %w", err)
	}
	if _, err := w.Write(Compose(msg, t.now())); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	// The message is queued once DATA is accepted; a failed QUIT does not undo that.
	if err := client.Quit(); err != nil {
		logger.Log.Warn("SMTP QUIT failed after message was accepted", "host", t.cfg.Host, "error", err)
	}
	return nil
}

// Compose renders msg as an RFC 5322 plain-text message with CRLF line endings.
func Compose(msg Message, date time.Time) []byte {
	var b strings.Builder
	writeHeader(&b, "From", msg.From)
	writeHeader(&b, "To", msg.To)
	if msg.ReplyTo != "" {
		writeHeader(&b, "Reply-To", msg.ReplyTo)
	}
	writeHeader(&b, "Subject", mime.QEncoding.Encode("utf-8", SanitizeHeader(msg.Subject)))
	writeHeader(&b, "Date", date.Format(time.RFC1123Z))
	writeHeader(&b, "MIME-Version", "1.0")
	writeHeader(&b, "Content-Type", "text/plain; charset=UTF-8")
	writeHeader(&b, "Content-Transfer-Encoding", "8bit")
	b.WriteString("\r\n")

	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	for _, line := range strings.Split(body, "\n") {
		// dot-stuffing is handled by the smtp data writer
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

func writeHeader(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(SanitizeHeader(value))
	b.WriteString("\r\n")
}

// SanitizeHeader collapses CR and LF so user input cannot inject headers.
func SanitizeHeader(value string) string {
	value = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(value)
	return strings.TrimSpace(value)
}
