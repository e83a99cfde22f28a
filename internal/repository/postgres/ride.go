package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fare/internal/domain"
	"fare/internal/repository"
)

// RideRepository is a PostgreSQL implementation of repository.RideRepository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// NewRideRepositoryWithTx creates a ride repository using a transaction.
func NewRideRepositoryWithTx(tx *sql.Tx) *RideRepository {
	return &RideRepository{q: tx}
}

const rideColumns = `id, user_id, category, origin, destination, distance_km, duration_minutes,
	distance_price, duration_price, service_fee, surge_multiplier, base_price,
	discount_percentage, discount_amount, final_price, currency, route_source, status, created_at`

// Create appends a new ride record with its full price breakdown.
func (r *RideRepository) Create(ctx context.Context, ride *domain.RideRecord) error {
	query := `
		INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	var routeSource sql.NullString
	if ride.RouteSource != "" {
		routeSource = sql.NullString{String: string(ride.RouteSource), Valid: true}
	}

	b := ride.Breakdown
	_, err := r.q.ExecContext(ctx, query,
		ride.ID,
		ride.UserID,
		ride.Category,
		ride.Origin,
		ride.Destination,
		ride.DistanceKm,
		ride.DurationMinutes,
		b.DistancePrice,
		b.DurationPrice,
		b.ServiceFee,
		b.SurgeMultiplier,
		b.BasePrice,
		b.DiscountPercentage,
		b.DiscountAmount,
		b.FinalPrice,
		b.Currency,
		routeSource,
		ride.Status,
		ride.CreatedAt,
	)

	return err
}

// GetByID retrieves a ride record by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.RideRecord, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	ride, err := scanRide(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return ride, nil
}

// GetByUser retrieves a user's most recent ride records, newest first.
func (r *RideRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*domain.RideRecord, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.q.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.RideRecord
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

// scanTarget is satisfied by both *sql.Row and *sql.Rows.
type scanTarget interface {
	Scan(dest ...any) error
}

func scanRide(row scanTarget) (*domain.RideRecord, error) {
	var ride domain.RideRecord
	var routeSource sql.NullString

	err := row.Scan(
		&ride.ID,
		&ride.UserID,
		&ride.Category,
		&ride.Origin,
		&ride.Destination,
		&ride.DistanceKm,
		&ride.DurationMinutes,
		&ride.Breakdown.DistancePrice,
		&ride.Breakdown.DurationPrice,
		&ride.Breakdown.ServiceFee,
		&ride.Breakdown.SurgeMultiplier,
		&ride.Breakdown.BasePrice,
		&ride.Breakdown.DiscountPercentage,
		&ride.Breakdown.DiscountAmount,
		&ride.Breakdown.FinalPrice,
		&ride.Breakdown.Currency,
		&routeSource,
		&ride.Status,
		&ride.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ride.Breakdown.Category = ride.Category
	if routeSource.Valid {
		ride.RouteSource = domain.RouteSource(routeSource.String)
	}

	return &ride, nil
}
