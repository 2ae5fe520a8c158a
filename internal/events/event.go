// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"detailing_site_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Intake Domain Events
// =============================================================================

// InquirySubmitted is published after an inquiry row has been persisted.
// Notification fan-out keys off this event; it is never published when
// persistence fails.
type InquirySubmitted struct {
	BaseEvent
	InquiryID uuid.UUID `json:"inquiryId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Vehicle   string    `json:"vehicle"`
	Message   string    `json:"message"`
}

func (e InquirySubmitted) EventName() string { return "intake.inquiry.submitted" }

// BookingSubmitted is published after a booking row has been persisted.
type BookingSubmitted struct {
	BaseEvent
	BookingID uuid.UUID `json:"bookingId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Vehicle   string    `json:"vehicle"`
	Package   string    `json:"package"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
}

func (e BookingSubmitted) EventName() string { return "intake.booking.submitted" }

// =============================================================================
// Webhook Domain Events
// =============================================================================

// RecordRelayed is published when the backing store's row-insert webhook
// delivers a new record. Display fields are already normalized: absent values
// carry the webhook package's placeholders, never empty strings. Phone is the
// exception and stays empty when absent so the SMS channel can gate on it.
type RecordRelayed struct {
	BaseEvent
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
	Package string `json:"package"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

func (e RecordRelayed) EventName() string { return "webhook.record.relayed" }
