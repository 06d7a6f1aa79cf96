package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/manzanit0/neshry/pkg/env"
	"github.com/manzanit0/neshry/pkg/neshan"
)

func main() {
	var origin, destination, vehicle string
	var avoidTrafficZone, avoidOddEvenZone, alternative bool
	flag.StringVar(&origin, "origin", "", `origin as "lat,lon"`)
	flag.StringVar(&destination, "destination", "", `destination as "lat,lon"`)
	flag.StringVar(&vehicle, "vehicle", "car", "car or motorcycle")
	flag.BoolVar(&avoidTrafficZone, "avoid-traffic-zone", false, "avoid the municipal traffic zone")
	flag.BoolVar(&avoidOddEvenZone, "avoid-odd-even-zone", false, "avoid the odd-even zone")
	flag.BoolVar(&alternative, "alternative", false, "include alternative routes")
	flag.Parse()

	env.Load()

	apiKey, err := env.NeshanAPIKey()
	if err != nil {
		abort(err)
	}

	from, err := parsePoint(origin)
	if err != nil {
		abort(fmt.Errorf("invalid -origin: %w", err))
	}

	to, err := parsePoint(destination)
	if err != nil {
		abort(fmt.Errorf("invalid -destination: %w", err))
	}

	client, err := neshan.New(apiKey)
	if err != nil {
		abort(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	routes, err := client.Route(ctx, neshan.VehicleType(vehicle), from, to,
		avoidTrafficZone, avoidOddEvenZone, alternative)
	if err != nil {
		abort(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Route", "Leg", "Summary", "Distance", "Duration"})
	for i, route := range routes.Routes {
		for j, leg := range route.Legs {
			table.Append([]string{
				strconv.Itoa(i + 1),
				strconv.Itoa(j + 1),
				leg.Summary,
				leg.Distance.Text,
				leg.Duration.Text,
			})
		}
	}

	table.Render()
}

func parsePoint(s string) (neshan.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return neshan.Point{}, fmt.Errorf(`want "lat,lon", got %q`, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return neshan.Point{}, err
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return neshan.Point{}, err
	}

	return neshan.Point{Latitude: lat, Longitude: lon}, nil
}

func abort(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
