package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"detailing_site_backend/internal/email"
	"detailing_site_backend/internal/events"
	"detailing_site_backend/platform/logger"
)

type fakeEmailSender struct {
	mu       sync.Mutex
	calls    []string
	failWith map[string]error
}

func (s *fakeEmailSender) record(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
	if s.failWith != nil {
		return s.failWith[name]
	}
	return nil
}

func (s *fakeEmailSender) SendInquiryReceivedEmail(context.Context, string, string) error {
	return s.record("inquiry-received")
}

func (s *fakeEmailSender) SendBookingReceivedEmail(context.Context, string, string, string, string, string) error {
	return s.record("booking-received")
}

func (s *fakeEmailSender) SendInquiryAlertEmail(context.Context, string, email.InquiryAlert) error {
	return s.record("inquiry-alert")
}

func (s *fakeEmailSender) SendBookingAlertEmail(context.Context, string, email.BookingAlert) error {
	return s.record("booking-alert")
}

func (s *fakeEmailSender) called(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c == name {
			return true
		}
	}
	return false
}

type fakeSMSSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (s *fakeSMSSender) Send(_ context.Context, to, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return s.err
}

func (s *fakeSMSSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type fakeNotifConfig struct{}

func (fakeNotifConfig) GetAdminEmail() string   { return "owner@example.com" }
func (fakeNotifConfig) GetBusinessName() string { return "AC Detailing" }

type fakeSMSConfig struct {
	enabled bool
}

func (c fakeSMSConfig) GetTwilioAccountSID() string { return "AC123" }
func (c fakeSMSConfig) GetTwilioAuthToken() string  { return "token" }
func (c fakeSMSConfig) GetSMSFromNumber() string    { return "+15550001111" }
func (c fakeSMSConfig) IsSMSEnabled() bool          { return c.enabled }

func newTestModule(emails *fakeEmailSender, texts *fakeSMSSender, smsEnabled bool) *Module {
	return NewModule(emails, texts, fakeNotifConfig{}, fakeSMSConfig{enabled: smsEnabled}, logger.New("test"))
}

func inquiryEvent(phone string) events.InquirySubmitted {
	return events.InquirySubmitted{
		BaseEvent: events.NewBaseEvent(),
		Name:      "Carlos",
		Email:     "carlos@example.com",
		Phone:     phone,
		Vehicle:   "Civic",
		Message:   "Need a full detail",
	}
}

func bookingEvent(phone string) events.BookingSubmitted {
	return events.BookingSubmitted{
		BaseEvent: events.NewBaseEvent(),
		Name:      "Carlos",
		Email:     "carlos@example.com",
		Phone:     phone,
		Vehicle:   "Civic",
		Package:   "GOLD – SUV ($290)",
		Date:      "2026-09-01",
		Time:      "10:00",
	}
}

func TestInquiryFanOutSendsBothEmails(t *testing.T) {
	emails := &fakeEmailSender{}
	texts := &fakeSMSSender{}
	m := newTestModule(emails, texts, false)

	if err := m.Handle(context.Background(), inquiryEvent("")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if !emails.called("inquiry-received") {
		t.Fatal("customer acknowledgment email not sent")
	}
	if !emails.called("inquiry-alert") {
		t.Fatal("admin alert email not sent")
	}
	if texts.count() != 0 {
		t.Fatalf("sent %d SMS with SMS disabled", texts.count())
	}
}

func TestFailedChannelDoesNotBlockOthers(t *testing.T) {
	emails := &fakeEmailSender{failWith: map[string]error{
		"booking-received": errors.New("smtp timeout"),
	}}
	texts := &fakeSMSSender{}
	m := newTestModule(emails, texts, true)

	if err := m.Handle(context.Background(), bookingEvent("5551234567")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if !emails.called("booking-alert") {
		t.Fatal("admin alert not sent after customer email failed")
	}
	if texts.count() != 1 {
		t.Fatalf("sent %d SMS, want 1", texts.count())
	}
}

func TestAllChannelsFailStillReturnsNil(t *testing.T) {
	emails := &fakeEmailSender{failWith: map[string]error{
		"booking-received": errors.New("smtp timeout"),
		"booking-alert":    errors.New("smtp timeout"),
	}}
	texts := &fakeSMSSender{err: errors.New("twilio 500")}
	m := newTestModule(emails, texts, true)

	if err := m.Handle(context.Background(), bookingEvent("5551234567")); err != nil {
		t.Fatalf("Handle: %v, want nil despite channel failures", err)
	}
}

func TestSMSSkippedWithoutPhone(t *testing.T) {
	emails := &fakeEmailSender{}
	texts := &fakeSMSSender{}
	m := newTestModule(emails, texts, true)

	if err := m.Handle(context.Background(), bookingEvent("")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if texts.count() != 0 {
		t.Fatalf("sent %d SMS without a phone number", texts.count())
	}
}

func TestRelayedRecordFansOutAsBooking(t *testing.T) {
	emails := &fakeEmailSender{}
	texts := &fakeSMSSender{}
	m := newTestModule(emails, texts, true)

	event := events.RecordRelayed{
		BaseEvent: events.NewBaseEvent(),
		Name:      "Unknown",
		Email:     "lead@example.com",
		Vehicle:   "—",
		Package:   "—",
		Date:      "—",
		Time:      "—",
	}
	if err := m.Handle(context.Background(), event); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if !emails.called("booking-received") || !emails.called("booking-alert") {
		t.Fatalf("relayed record did not fan out booking emails, calls=%v", emails.calls)
	}
	// Phone stays empty on a relayed record without one, so no SMS.
	if texts.count() != 0 {
		t.Fatalf("sent %d SMS for relayed record without phone", texts.count())
	}
}
