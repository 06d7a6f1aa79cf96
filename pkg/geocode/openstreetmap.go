package geocode

import (
	"context"
	"fmt"

	"github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
)

// NewOpenstreetmapGeocoder is a key-less fallback for when no Neshan
// API key is available. Coverage outside Iran is better, but it knows
// nothing about traffic or odd-even zones.
func NewOpenstreetmapGeocoder() *oc {
	geocoder := openstreetmap.Geocoder()
	return &oc{geocoder: geocoder}
}

type oc struct {
	geocoder geo.Geocoder
}

var _ ReverseGeocoder = (*oc)(nil)

func (g *oc) ReverseGeocode(_ context.Context, lat, lon float64) (*Address, error) {
	address, err := g.geocoder.ReverseGeocode(lat, lon)
	if err != nil {
		return nil, err
	}

	if address == nil {
		return nil, fmt.Errorf("unable to reverse geocode location")
	}

	return &Address{
		Latitude:  lat,
		Longitude: lon,
		Formatted: address.FormattedAddress,
		Road:      address.Street,
		City:      address.City,
		State:     address.State,
	}, nil
}
