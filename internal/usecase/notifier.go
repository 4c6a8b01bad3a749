package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"obsidianiq-forms-api/internal/domain"
	"obsidianiq-forms-api/pkg/email"
	"obsidianiq-forms-api/pkg/metrics"
)

// notProvided stands in for blank optional fields in the message body
const notProvided = "Not provided"

// NotifierConfig holds the addresses every notification is sent from and to.
type NotifierConfig struct {
	FromEmail string
	ToEmail   string
	Timeout   time.Duration
}

// Notifier composes form notifications and hands them to the email transport once.
type Notifier struct {
	sender    email.Sender
	cfg       NotifierConfig
	validator *FormValidator
}

// NewNotifier creates a notifier. The validator decides whether the submitter
// address is good enough to use as Reply-To.
func NewNotifier(sender email.Sender, cfg NotifierConfig, fv *FormValidator) *Notifier {
	return &Notifier{sender: sender, cfg: cfg, validator: fv}
}

// NotifyContact sends the contact inquiry notification
func (n *Notifier) NotifyContact(ctx context.Context, inquiry *domain.ContactInquiry) error {
	subject := "New Contact Inquiry from " + displayName(inquiry.FullName, inquiry.Email)
	return n.send(ctx, domain.FormContact, subject, inquiry.Email, ContactBody(inquiry))
}

// NotifyWorkApplication sends the work-with-us application notification
func (n *Notifier) NotifyWorkApplication(ctx context.Context, application *domain.WorkApplication) error {
	name := strings.TrimSpace(strings.TrimSpace(application.FirstName) + " " + strings.TrimSpace(application.LastName))
	subject := "New Work With Us Application from " + displayName(name, application.Email)
	return n.send(ctx, domain.FormWorkWithUs, subject, application.Email, WorkApplicationBody(application))
}

func (n *Notifier) send(ctx context.Context, form domain.Form, subject, submitter, body string) error {
	if n.cfg.FromEmail == "" || n.cfg.ToEmail == "" {
		return email.ErrNotConfigured
	}

	msg := email.Message{
		From:    n.cfg.FromEmail,
		To:      n.cfg.ToEmail,
		Subject: subject,
		Body:    body,
	}
	if n.validator.IsEmail(submitter) {
		msg.ReplyTo = strings.TrimSpace(submitter)
	}

	if n.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := n.sender.Send(ctx, msg)
	metrics.ObserveSend(string(form), time.Since(start).Seconds(), err == nil)
	if err != nil {
		return fmt.Errorf("send %s notification: %w", form, err)
	}
	return nil
}

// ContactBody renders every inquiry field, one per line, in declaration order.
func ContactBody(c *domain.ContactInquiry) string {
	var b strings.Builder
	writeField(&b, "Service Requested", c.ServiceRequested)
	writeField(&b, "Full Name", c.FullName)
	writeField(&b, "Email", c.Email)
	writeField(&b, "Phone Number", c.PhoneNumber)
	writeField(&b, "Company Name", c.CompanyName)
	writeField(&b, "Position", c.Position)
	writeField(&b, "Country", c.Country)
	writeField(&b, "State/Province", c.StateProvince)
	writeField(&b, "Message", c.Message)
	writeField(&b, "Submitted At", formatTime(c.SubmittedAt))
	return b.String()
}

// WorkApplicationBody renders every application field, one per line, in declaration order.
func WorkApplicationBody(w *domain.WorkApplication) string {
	var b strings.Builder
	writeField(&b, "First Name", w.FirstName)
	writeField(&b, "Last Name", w.LastName)
	writeField(&b, "Email", w.Email)
	writeField(&b, "Phone Number", w.PhoneNumber)
	writeField(&b, "Message", w.Message)
	writeField(&b, "Has Resume", yesNo(w.HasResume))
	writeField(&b, "Submitted At", formatTime(w.SubmittedAt))
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = notProvided
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func displayName(name, fallback string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return strings.TrimSpace(fallback)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
