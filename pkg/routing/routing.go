package routing

import "context"

// Router computes a trip between two coordinates.
type Router interface {
	FindTrip(ctx context.Context, origin, destination Coordinates) (*Trip, error)
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Trip summarises the primary route a provider found: total distance,
// total travel time and a human-readable description of the path.
type Trip struct {
	Summary         string
	DistanceMeters  float64
	DurationSeconds float64
}
