package service

import "errors"

var (
	// ErrUnknownCategory is returned when a ride category is not one of the
	// fixed set. This is the only error that aborts a quote outright.
	ErrUnknownCategory = errors.New("unknown ride category")

	// ErrNegativeDistance is returned when a negative distance is supplied.
	ErrNegativeDistance = errors.New("distance must not be negative")

	// ErrNegativeDuration is returned when a negative duration is supplied.
	ErrNegativeDuration = errors.New("duration must not be negative")

	// ErrInvalidUserID is returned when the user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidRideID is returned when the ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidOrigin is returned when the origin address is empty.
	ErrInvalidOrigin = errors.New("invalid origin location")

	// ErrInvalidDestination is returned when the destination address is empty.
	ErrInvalidDestination = errors.New("invalid destination location")

	// ErrInvalidCoordinates is returned when a lat/lng pair is outside
	// WGS84 bounds.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
