package repository

import (
	"context"

	"github.com/google/uuid"
)

// NewInquiry holds the sanitized fields for an inquiry insert.
type NewInquiry struct {
	Name    string
	Email   string
	Phone   string
	Vehicle string
	Message string
}

// NewBooking holds the sanitized fields for a booking insert.
type NewBooking struct {
	Name    string
	Email   string
	Phone   string
	Vehicle string
	Package string
	Date    string
	Time    string
}

// Repository persists intake records. Records are append-only: this subsystem
// never updates or deletes a row once written.
type Repository interface {
	InsertInquiry(ctx context.Context, in NewInquiry) (uuid.UUID, error)
	InsertBooking(ctx context.Context, in NewBooking) (uuid.UUID, error)
}
