// Package notification provides event handlers for sending notifications
// (emails, SMS) in response to domain events.
// This module subscribes to events and inverts the dependency: intake and
// webhook no longer need to know about email providers or templates.
package notification

import (
	"context"
	"fmt"

	"detailing_site_backend/internal/email"
	"detailing_site_backend/internal/events"
	"detailing_site_backend/internal/sms"
	"detailing_site_backend/platform/config"
	"detailing_site_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Module fans a submission out to its notification channels: customer
// acknowledgment email, admin alert email, and an optional SMS. Channels
// are independent and best-effort; a failed channel is logged and never
// fails the request or cancels its siblings.
type Module struct {
	emails email.Sender
	texts  sms.Sender
	cfg    config.NotificationConfig
	smsCfg config.SMSConfig
	log    *logger.Logger
}

var _ events.Handler = (*Module)(nil)

func NewModule(emails email.Sender, texts sms.Sender, cfg config.NotificationConfig, smsCfg config.SMSConfig, log *logger.Logger) *Module {
	return &Module{
		emails: emails,
		texts:  texts,
		cfg:    cfg,
		smsCfg: smsCfg,
		log:    log,
	}
}

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.InquirySubmitted{}.EventName(), m)
	bus.Subscribe(events.BookingSubmitted{}.EventName(), m)
	bus.Subscribe(events.RecordRelayed{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.InquirySubmitted:
		return m.handleInquirySubmitted(ctx, e)
	case events.BookingSubmitted:
		return m.handleBookingSubmitted(ctx, e)
	case events.RecordRelayed:
		return m.handleRecordRelayed(ctx, e)
	default:
		m.log.Warn("unhandled event type", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleInquirySubmitted(ctx context.Context, e events.InquirySubmitted) error {
	m.fanOut(ctx, "inquiry", e.Phone, m.inquirySMSBody(),
		func() error {
			return m.emails.SendInquiryReceivedEmail(ctx, e.Email, e.Name)
		},
		func() error {
			return m.emails.SendInquiryAlertEmail(ctx, m.cfg.GetAdminEmail(), email.InquiryAlert{
				Name:    e.Name,
				Email:   e.Email,
				Phone:   e.Phone,
				Vehicle: e.Vehicle,
				Message: e.Message,
			})
		},
		e.Email,
	)
	return nil
}

func (m *Module) handleBookingSubmitted(ctx context.Context, e events.BookingSubmitted) error {
	m.fanOut(ctx, "booking", e.Phone, m.bookingSMSBody(e.Date, e.Time),
		func() error {
			return m.emails.SendBookingReceivedEmail(ctx, e.Email, e.Name, e.Package, e.Date, e.Time)
		},
		func() error {
			return m.emails.SendBookingAlertEmail(ctx, m.cfg.GetAdminEmail(), email.BookingAlert{
				Name:    e.Name,
				Email:   e.Email,
				Phone:   e.Phone,
				Vehicle: e.Vehicle,
				Package: e.Package,
				Date:    e.Date,
				Time:    e.Time,
			})
		},
		e.Email,
	)
	return nil
}

// handleRecordRelayed treats a relayed row like a booking: the normalizer
// already filled absent display fields with placeholders, so the templates
// render unchanged.
func (m *Module) handleRecordRelayed(ctx context.Context, e events.RecordRelayed) error {
	m.fanOut(ctx, "relayed-record", e.Phone, m.bookingSMSBody(e.Date, e.Time),
		func() error {
			return m.emails.SendBookingReceivedEmail(ctx, e.Email, e.Name, e.Package, e.Date, e.Time)
		},
		func() error {
			return m.emails.SendBookingAlertEmail(ctx, m.cfg.GetAdminEmail(), email.BookingAlert{
				Name:    e.Name,
				Email:   e.Email,
				Phone:   e.Phone,
				Vehicle: e.Vehicle,
				Package: e.Package,
				Date:    e.Date,
				Time:    e.Time,
			})
		},
		e.Email,
	)
	return nil
}

// fanOut launches the channels concurrently. Every channel logs and swallows
// its own error so one failure never cancels the others; the group exists
// only to wait for all of them.
func (m *Module) fanOut(ctx context.Context, kind, phone, smsBody string, customer, admin func() error, customerEmail string) {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := customer(); err != nil {
			m.log.NotificationError("email", kind+"-received", customerEmail, err)
			return nil
		}
		m.log.NotificationSent("email", kind+"-received", customerEmail)
		return nil
	})

	g.Go(func() error {
		adminEmail := m.cfg.GetAdminEmail()
		if err := admin(); err != nil {
			m.log.NotificationError("email", kind+"-alert", adminEmail, err)
			return nil
		}
		m.log.NotificationSent("email", kind+"-alert", adminEmail)
		return nil
	})

	if m.smsCfg.IsSMSEnabled() && phone != "" {
		g.Go(func() error {
			if err := m.texts.Send(ctx, phone, smsBody); err != nil {
				m.log.NotificationError("sms", kind+"-received", phone, err)
				return nil
			}
			m.log.NotificationSent("sms", kind+"-received", phone)
			return nil
		})
	}

	_ = g.Wait()
}

func (m *Module) inquirySMSBody() string {
	return fmt.Sprintf("%s: We received your message and will reply shortly.", m.cfg.GetBusinessName())
}

func (m *Module) bookingSMSBody(date, tm string) string {
	return fmt.Sprintf("%s: Booking request received for %s %s. We'll confirm shortly.", m.cfg.GetBusinessName(), date, tm)
}
