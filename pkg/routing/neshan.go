package routing

import (
	"context"
	"fmt"

	"github.com/manzanit0/neshry/pkg/neshan"
)

func NewNeshanRouter(client *neshan.Client, vehicle neshan.VehicleType) *nr {
	return &nr{client: client, vehicle: vehicle}
}

type nr struct {
	client  *neshan.Client
	vehicle neshan.VehicleType
}

var _ Router = (*nr)(nil)

func (r *nr) FindTrip(ctx context.Context, origin, destination Coordinates) (*Trip, error) {
	routes, err := r.client.Route(ctx, r.vehicle,
		neshan.Point{Latitude: origin.Latitude, Longitude: origin.Longitude},
		neshan.Point{Latitude: destination.Latitude, Longitude: destination.Longitude},
		false, false, false)
	if err != nil {
		return nil, err
	}

	if len(routes.Routes) == 0 {
		return nil, fmt.Errorf("no route between origin and destination")
	}

	var trip Trip
	for _, leg := range routes.Routes[0].Legs {
		if trip.Summary == "" {
			trip.Summary = leg.Summary
		}

		trip.DistanceMeters += leg.Distance.Value
		trip.DurationSeconds += leg.Duration.Value
	}

	return &trip, nil
}
