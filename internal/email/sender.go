// Package email renders and delivers transactional email for the intake
// pipeline. Two interchangeable senders exist: BrevoSender (HTTP API) and
// SMTPSender (direct SMTP via go-mail). NoopSender is used when email is
// disabled so callers never branch on configuration.
package email

import (
	"context"

	"detailing_site_backend/platform/config"
)

// InquiryAlert carries the full inquiry for the admin alert email, so the
// business owner never needs the database to see a new lead.
type InquiryAlert struct {
	Name    string
	Email   string
	Phone   string
	Vehicle string
	Message string
}

// BookingAlert carries the full booking for the admin alert email.
type BookingAlert struct {
	Name    string
	Email   string
	Phone   string
	Vehicle string
	Package string
	Date    string
	Time    string
}

// Sender delivers the four intake email kinds.
type Sender interface {
	// SendInquiryReceivedEmail acknowledges a quote inquiry to the customer.
	SendInquiryReceivedEmail(ctx context.Context, toEmail, name string) error
	// SendBookingReceivedEmail acknowledges a booking request to the customer.
	SendBookingReceivedEmail(ctx context.Context, toEmail, name, pkg, date, tm string) error
	// SendInquiryAlertEmail alerts the admin address about a new inquiry.
	SendInquiryAlertEmail(ctx context.Context, toEmail string, alert InquiryAlert) error
	// SendBookingAlertEmail alerts the admin address about a new booking.
	SendBookingAlertEmail(ctx context.Context, toEmail string, alert BookingAlert) error
}

// NoopSender satisfies Sender without delivering anything.
type NoopSender struct{}

func (NoopSender) SendInquiryReceivedEmail(context.Context, string, string) error { return nil }
func (NoopSender) SendBookingReceivedEmail(context.Context, string, string, string, string, string) error {
	return nil
}
func (NoopSender) SendInquiryAlertEmail(context.Context, string, InquiryAlert) error { return nil }
func (NoopSender) SendBookingAlertEmail(context.Context, string, BookingAlert) error { return nil }

// NewSender constructs the configured Sender implementation.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	if cfg.GetEmailProvider() == "smtp" {
		return NewSMTPSender(
			cfg.GetSMTPHost(),
			cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(),
			cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(),
			cfg.GetEmailFromName(),
		), nil
	}

	return NewBrevoSender(cfg), nil
}
