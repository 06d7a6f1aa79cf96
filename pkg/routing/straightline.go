package routing

import (
	"context"
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// NewStraightLineRouter estimates trips as the great-circle distance
// between the two points travelled at a fixed average speed. It's a
// stand-in for when no routing provider is reachable, not a substitute
// for real directions.
func NewStraightLineRouter(averageSpeedKmh float64) *slr {
	return &slr{speedKmh: averageSpeedKmh}
}

type slr struct {
	speedKmh float64
}

var _ Router = (*slr)(nil)

func (r *slr) FindTrip(_ context.Context, origin, destination Coordinates) (*Trip, error) {
	if r.speedKmh <= 0 {
		return nil, fmt.Errorf("average speed must be positive, got %f", r.speedKmh)
	}

	km := haversineKm(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)

	return &Trip{
		Summary:         "straight line",
		DistanceMeters:  km * 1000,
		DurationSeconds: km / r.speedKmh * 3600,
	}, nil
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
