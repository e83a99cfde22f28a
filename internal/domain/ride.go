package domain

import "time"

// RideStatus represents the lifecycle stage of a ride record.
// Only the QUOTED terminal event is produced here; later transitions are
// owned by the booking system.
type RideStatus string

const (
	RideStatusQuoted    RideStatus = "QUOTED"
	RideStatusConfirmed RideStatus = "CONFIRMED"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

// RideRecord is the persisted outcome of a successful quote-to-booking flow.
type RideRecord struct {
	ID              string
	UserID          string
	Category        RideCategory
	Origin          string
	Destination     string
	DistanceKm      float64
	DurationMinutes int
	Breakdown       PriceBreakdown
	RouteSource     RouteSource
	Status          RideStatus
	CreatedAt       time.Time
}
