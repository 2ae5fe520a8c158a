package service

import (
	"context"
	"errors"
	"testing"

	"detailing_site_backend/internal/events"
	"detailing_site_backend/internal/intake/repository"
	"detailing_site_backend/internal/intake/transport"
	"detailing_site_backend/platform/apperr"
	"detailing_site_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	inquiries []repository.NewInquiry
	bookings  []repository.NewBooking
	err       error
}

func (r *fakeRepo) InsertInquiry(_ context.Context, in repository.NewInquiry) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.inquiries = append(r.inquiries, in)
	return uuid.New(), nil
}

func (r *fakeRepo) InsertBooking(_ context.Context, in repository.NewBooking) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.bookings = append(r.bookings, in)
	return uuid.New(), nil
}

type fakeBus struct {
	published []events.Event
}

func (b *fakeBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *fakeBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *fakeBus) Subscribe(string, events.Handler) {}

func newTestService(repo *fakeRepo, bus *fakeBus) *Service {
	return New(repo, bus, logger.New("test"))
}

func validInquiry() transport.InquiryRequest {
	return transport.InquiryRequest{
		Name:    "Carlos",
		Email:   "carlos@example.com",
		Phone:   "5551234567",
		Vehicle: "Civic",
		Message: "Need a full detail",
	}
}

func TestSubmitInquiryPersistsAndPublishes(t *testing.T) {
	repo := &fakeRepo{}
	bus := &fakeBus{}
	svc := newTestService(repo, bus)

	if err := svc.SubmitInquiry(context.Background(), validInquiry()); err != nil {
		t.Fatalf("SubmitInquiry: %v", err)
	}

	if len(repo.inquiries) != 1 {
		t.Fatalf("persisted %d rows, want 1", len(repo.inquiries))
	}
	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	event, ok := bus.published[0].(events.InquirySubmitted)
	if !ok {
		t.Fatalf("published %T, want InquirySubmitted", bus.published[0])
	}
	if event.Email != "carlos@example.com" || event.InquiryID == uuid.Nil {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestHoneypotDropsSubmissionSilently(t *testing.T) {
	repo := &fakeRepo{}
	bus := &fakeBus{}
	svc := newTestService(repo, bus)

	req := validInquiry()
	req.Company = "Totally Real LLC"

	if err := svc.SubmitInquiry(context.Background(), req); err != nil {
		t.Fatalf("SubmitInquiry: %v, want nil for honeypot", err)
	}

	if len(repo.inquiries) != 0 {
		t.Fatalf("persisted %d rows for honeypot submission", len(repo.inquiries))
	}
	if len(bus.published) != 0 {
		t.Fatalf("published %d events for honeypot submission", len(bus.published))
	}
}

func TestInvalidEmailRejectedBeforePersist(t *testing.T) {
	repo := &fakeRepo{}
	bus := &fakeBus{}
	svc := newTestService(repo, bus)

	for _, bad := range []string{"", "plain", "a@b", "a b@c.com", "a@b .com"} {
		req := validInquiry()
		req.Email = bad

		err := svc.SubmitInquiry(context.Background(), req)
		if !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("email %q: err = %v, want validation error", bad, err)
		}
	}

	if len(repo.inquiries) != 0 || len(bus.published) != 0 {
		t.Fatal("invalid email reached persistence or the bus")
	}
}

func TestPersistFailureReturnsInternalAndSkipsEvent(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	bus := &fakeBus{}
	svc := newTestService(repo, bus)

	err := svc.SubmitBooking(context.Background(), transport.BookingRequest{
		Name:    "Carlos",
		Email:   "carlos@example.com",
		Package: "GOLD – SUV ($290)",
		Date:    "2026-09-01",
		Time:    "10:00",
	})
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("err = %v, want internal error", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("published %d events after failed insert", len(bus.published))
	}
}

func TestSubmitBookingSanitizesFields(t *testing.T) {
	repo := &fakeRepo{}
	bus := &fakeBus{}
	svc := newTestService(repo, bus)

	err := svc.SubmitBooking(context.Background(), transport.BookingRequest{
		Name:    "<b>Carlos</b>",
		Email:   "carlos@example.com",
		Vehicle: "Civic <script>alert(1)</script>",
		Package: "GOLD – SUV ($290)",
		Date:    "2026-09-01",
		Time:    "10:00",
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	if len(repo.bookings) != 1 {
		t.Fatalf("persisted %d rows, want 1", len(repo.bookings))
	}
	row := repo.bookings[0]
	if row.Name != "Carlos" {
		t.Fatalf("name = %q, want tags stripped", row.Name)
	}
	if row.Vehicle != "Civic alert(1)" {
		t.Fatalf("vehicle = %q, want script tags stripped", row.Vehicle)
	}
}
