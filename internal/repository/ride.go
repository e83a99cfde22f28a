package repository

import (
	"context"

	"fare/internal/domain"
)

// RideRepository defines the persistence operations for ride records.
type RideRepository interface {
	// Create appends a new ride record.
	Create(ctx context.Context, ride *domain.RideRecord) error

	// GetByID retrieves a ride record by ID.
	GetByID(ctx context.Context, id string) (*domain.RideRecord, error)

	// GetByUser retrieves a user's most recent ride records, newest first.
	GetByUser(ctx context.Context, userID string, limit int) ([]*domain.RideRecord, error)
}
