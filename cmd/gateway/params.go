package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manzanit0/neshry/pkg/neshan"
)

// parsePoint parses a "lat,lon" pair, latitude first.
func parsePoint(s string) (neshan.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return neshan.Point{}, fmt.Errorf(`want "lat,lon", got %q`, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return neshan.Point{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return neshan.Point{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	return neshan.Point{Latitude: lat, Longitude: lon}, nil
}

func parseLatLng(lat, lng string) (neshan.Point, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return neshan.Point{}, fmt.Errorf("invalid lat %q: %w", lat, err)
	}

	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return neshan.Point{}, fmt.Errorf("invalid lng %q: %w", lng, err)
	}

	return neshan.Point{Latitude: latitude, Longitude: longitude}, nil
}

func parseVehicle(s string) (neshan.VehicleType, error) {
	switch s {
	case string(neshan.VehicleTypeCar):
		return neshan.VehicleTypeCar, nil
	case string(neshan.VehicleTypeMotorcycle):
		return neshan.VehicleTypeMotorcycle, nil
	default:
		return "", fmt.Errorf("unknown vehicle type %q", s)
	}
}
