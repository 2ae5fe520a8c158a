package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new intake repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// InsertInquiry writes a single inquiry row and returns its ID.
func (r *Repo) InsertInquiry(ctx context.Context, in NewInquiry) (uuid.UUID, error) {
	query := `
		INSERT INTO inquiries (name, email, phone, vehicle, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, in.Name, in.Email, in.Phone, in.Vehicle, in.Message).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert inquiry: %w", err)
	}

	return id, nil
}

// InsertBooking writes a single booking row and returns its ID.
func (r *Repo) InsertBooking(ctx context.Context, in NewBooking) (uuid.UUID, error) {
	query := `
		INSERT INTO bookings (name, email, phone, vehicle, package, date, time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, in.Name, in.Email, in.Phone, in.Vehicle, in.Package, in.Date, in.Time).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert booking: %w", err)
	}

	return id, nil
}
