package geocode

import (
	"context"

	"github.com/manzanit0/neshry/pkg/neshan"
)

func NewNeshanGeocoder(client *neshan.Client) *ngc {
	return &ngc{client: client}
}

type ngc struct {
	client *neshan.Client
}

var _ ReverseGeocoder = (*ngc)(nil)

func (g *ngc) ReverseGeocode(ctx context.Context, lat, lon float64) (*Address, error) {
	address, err := g.client.ReverseGeocode(ctx, neshan.Point{Latitude: lat, Longitude: lon})
	if err != nil {
		return nil, err
	}

	return &Address{
		Latitude:  lat,
		Longitude: lon,
		Formatted: address.FormattedAddress,
		Road:      address.RouteName,
		City:      address.City,
		State:     address.State,
	}, nil
}
