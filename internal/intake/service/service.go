// Package service implements the submission pipeline for both intake record
// kinds: validate, persist, publish for notification fan-out, respond. The
// two kinds share one flow parameterized by a persist step, so table names
// and field sets are the only per-kind differences.
package service

import (
	"context"
	"regexp"

	"detailing_site_backend/internal/events"
	"detailing_site_backend/internal/intake/repository"
	"detailing_site_backend/internal/intake/transport"
	"detailing_site_backend/platform/apperr"
	"detailing_site_backend/platform/logger"
	"detailing_site_backend/platform/sanitize"
)

// emailPattern is the minimal "something@domain.tld" gate applied before any
// persistence or notification. Every downstream channel depends on a usable
// contact email, so this is the one hard validation in the pipeline.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const (
	msgInvalidEmail  = "please enter a valid email"
	msgInquiryFailed = "failed to save inquiry"
	msgBookingFailed = "failed to save booking"
)

// Service orchestrates validate → persist → notify for intake submissions.
type Service struct {
	repo repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

// New creates a new intake service.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// submission parameterizes the shared pipeline per record kind.
type submission struct {
	kind     string
	email    string
	honeypot string
	// persist inserts exactly one row and publishes the corresponding
	// submission event. It runs only after validation passes.
	persist func(ctx context.Context) error
}

// SubmitInquiry processes a quote inquiry from the direct-submission path.
func (s *Service) SubmitInquiry(ctx context.Context, req transport.InquiryRequest) error {
	return s.process(ctx, submission{
		kind:     "inquiry",
		email:    req.Email,
		honeypot: req.Company,
		persist: func(ctx context.Context) error {
			record := repository.NewInquiry{
				Name:    sanitize.Text(req.Name),
				Email:   sanitize.Text(req.Email),
				Phone:   sanitize.Text(req.Phone),
				Vehicle: sanitize.Text(req.Vehicle),
				Message: sanitize.Text(req.Message),
			}

			id, err := s.repo.InsertInquiry(ctx, record)
			if err != nil {
				s.log.DatabaseError("insert inquiry", err)
				return apperr.Wrap(apperr.KindInternal, msgInquiryFailed, err)
			}

			_ = s.bus.PublishSync(ctx, events.InquirySubmitted{
				BaseEvent: events.NewBaseEvent(),
				InquiryID: id,
				Name:      record.Name,
				Email:     record.Email,
				Phone:     record.Phone,
				Vehicle:   record.Vehicle,
				Message:   record.Message,
			})
			return nil
		},
	})
}

// SubmitBooking processes a booking request from the direct-submission path.
func (s *Service) SubmitBooking(ctx context.Context, req transport.BookingRequest) error {
	return s.process(ctx, submission{
		kind:     "booking",
		email:    req.Email,
		honeypot: req.Company,
		persist: func(ctx context.Context) error {
			record := repository.NewBooking{
				Name:    sanitize.Text(req.Name),
				Email:   sanitize.Text(req.Email),
				Phone:   sanitize.Text(req.Phone),
				Vehicle: sanitize.Text(req.Vehicle),
				Package: sanitize.Text(req.Package),
				Date:    sanitize.Text(req.Date),
				Time:    sanitize.Text(req.Time),
			}

			id, err := s.repo.InsertBooking(ctx, record)
			if err != nil {
				s.log.DatabaseError("insert booking", err)
				return apperr.Wrap(apperr.KindInternal, msgBookingFailed, err)
			}

			_ = s.bus.PublishSync(ctx, events.BookingSubmitted{
				BaseEvent: events.NewBaseEvent(),
				BookingID: id,
				Name:      record.Name,
				Email:     record.Email,
				Phone:     record.Phone,
				Vehicle:   record.Vehicle,
				Package:   record.Package,
				Date:      record.Date,
				Time:      record.Time,
			})
			return nil
		},
	})
}

// process runs the shared pipeline. A filled honeypot ends the flow with a
// nil error and zero side effects: automated submitters see the same success
// response as real users. Notification outcomes never surface here; the bus
// handlers absorb channel failures, so a persisted record with zero delivered
// notifications is still an overall success.
func (s *Service) process(ctx context.Context, sub submission) error {
	if sub.honeypot != "" {
		s.log.Warn("honeypot triggered, dropping submission", "kind", sub.kind)
		return nil
	}

	if !emailPattern.MatchString(sub.email) {
		return apperr.Validation(msgInvalidEmail)
	}

	return sub.persist(ctx)
}
