package geocode

import "context"

// ReverseGeocoder maps a coordinate to a human-readable address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*Address, error)
}

// Address is the provider-neutral shape shared by every geocoding
// backend. Fields a provider has no data for are left empty.
type Address struct {
	Latitude  float64
	Longitude float64
	Formatted string
	Road      string
	City      string
	State     string
}
