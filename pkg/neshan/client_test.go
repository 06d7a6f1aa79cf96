package neshan_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/manzanit0/neshry/pkg/neshan"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		desc    string
		apiKey  string
		wantErr bool
	}{
		{
			desc:   "a plain token is a valid key",
			apiKey: "service.abc123",
		},
		{
			desc:    "an empty key is rejected",
			apiKey:  "",
			wantErr: true,
		},
		{
			desc:    "a key with a newline is rejected before any request",
			apiKey:  "abc\ndef",
			wantErr: true,
		},
		{
			desc:    "a key with a carriage return is rejected before any request",
			apiKey:  "abc\rdef",
			wantErr: true,
		},
		{
			desc:    "a key with a NUL byte is rejected before any request",
			apiKey:  "abc\x00def",
			wantErr: true,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			_, err := neshan.New(tC.apiKey)
			if tC.wantErr && err == nil {
				t.Errorf("expected an error for key %q, got none", tC.apiKey)
			}

			if !tC.wantErr && err != nil {
				t.Errorf("unexpected error for key %q: %v", tC.apiKey, err)
			}
		})
	}
}

func TestRoute(t *testing.T) {
	var gotQuery url.Values
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotHeader = r.Header.Clone()
		fmt.Fprint(w, `{"routes":[{"legs":[{"summary":"Example Rd","duration":{"value":600,"text":"10 minutes"},"distance":{"value":5000,"text":"5 km"}}]}]}`)
	}))
	defer srv.Close()

	client, err := neshan.New("secret", neshan.WithBaseURL(srv.URL), neshan.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("unexpected error building client: %v", err)
	}

	routes, err := client.Route(context.Background(), neshan.VehicleTypeCar,
		neshan.Point{Latitude: 35.731984, Longitude: 51.392684},
		neshan.Point{Latitude: 35.723680, Longitude: 50.953103},
		true, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery["origin"]; len(got) != 1 || got[0] != "35.731984,51.392684" {
		t.Errorf("origin = %v, want exactly one value 35.731984,51.392684", got)
	}

	if got := gotQuery["destination"]; len(got) != 1 || got[0] != "35.72368,50.953103" {
		t.Errorf("destination = %v, want exactly one value 35.72368,50.953103", got)
	}

	if got := gotQuery.Get("type"); got != "car" {
		t.Errorf("type = %q, want car", got)
	}

	if got := gotQuery.Get("avoid_traffic_zone"); got != "true" {
		t.Errorf("avoid_traffic_zone = %q, want true", got)
	}

	if got := gotQuery.Get("avoid_odd_even_zone"); got != "true" {
		t.Errorf("avoid_odd_even_zone = %q, want true", got)
	}

	if gotQuery.Has("avoid_odd_event_zone") {
		t.Error("the misspelt avoid_odd_event_zone parameter should not be sent")
	}

	if got := gotQuery.Get("alternative"); got != "false" {
		t.Errorf("alternative = %q, want false", got)
	}

	if got := gotHeader.Get("Api-Key"); got != "secret" {
		t.Errorf("Api-Key header = %q, want secret", got)
	}

	if got := gotHeader.Get("User-Agent"); got != "neshry" {
		t.Errorf("User-Agent header = %q, want neshry", got)
	}

	if len(routes.Routes) != 1 || len(routes.Routes[0].Legs) != 1 {
		t.Fatalf("want exactly one route with one leg, got %+v", routes)
	}

	leg := routes.Routes[0].Legs[0]
	if leg.Summary != "Example Rd" {
		t.Errorf("summary = %q, want Example Rd", leg.Summary)
	}

	if leg.Duration.Value != 600 || leg.Duration.Text != "10 minutes" {
		t.Errorf("duration = %+v, want {600 10 minutes}", leg.Duration)
	}

	if leg.Distance.Value != 5000 || leg.Distance.Text != "5 km" {
		t.Errorf("distance = %+v, want {5000 5 km}", leg.Distance)
	}
}

func TestRoute_VehicleTypes(t *testing.T) {
	testCases := []struct {
		vehicle neshan.VehicleType
		want    string
	}{
		{vehicle: neshan.VehicleTypeCar, want: "car"},
		{vehicle: neshan.VehicleTypeMotorcycle, want: "motorcycle"},
	}
	for _, tC := range testCases {
		t.Run(tC.want, func(t *testing.T) {
			var gotType string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotType = r.URL.Query().Get("type")
				fmt.Fprint(w, `{"routes":[]}`)
			}))
			defer srv.Close()

			client, err := neshan.New("secret", neshan.WithBaseURL(srv.URL), neshan.WithHTTPClient(srv.Client()))
			if err != nil {
				t.Fatalf("unexpected error building client: %v", err)
			}

			_, err = client.Route(context.Background(), tC.vehicle, neshan.Point{}, neshan.Point{}, false, false, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if gotType != tC.want {
				t.Errorf("type = %q, want %q", gotType, tC.want)
			}
		})
	}
}

func TestRoute_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"code":400,"message":"Invalid input"}`)
	}))
	defer srv.Close()

	client, err := neshan.New("secret", neshan.WithBaseURL(srv.URL), neshan.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("unexpected error building client: %v", err)
	}

	_, err = client.Route(context.Background(), neshan.VehicleTypeCar, neshan.Point{}, neshan.Point{}, false, false, false)
	if err == nil {
		t.Fatal("expected an error, got none")
	}

	var svcErr *neshan.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected a *neshan.ServiceError, got %T: %v", err, err)
	}

	if svcErr.Code != 400 {
		t.Errorf("code = %d, want 400", svcErr.Code)
	}

	if svcErr.Message != "Invalid input" {
		t.Errorf("message = %q, want Invalid input", svcErr.Message)
	}
}

func TestRoute_DecodeError(t *testing.T) {
	testCases := []struct {
		desc   string
		status int
		body   string
	}{
		{
			desc:   "malformed body on success status",
			status: http.StatusOK,
			body:   `{"routes": [`,
		},
		{
			desc:   "non-JSON body on failure status",
			status: http.StatusInternalServerError,
			body:   `<html>upstream exploded</html>`,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tC.status)
				fmt.Fprint(w, tC.body)
			}))
			defer srv.Close()

			client, err := neshan.New("secret", neshan.WithBaseURL(srv.URL), neshan.WithHTTPClient(srv.Client()))
			if err != nil {
				t.Fatalf("unexpected error building client: %v", err)
			}

			_, err = client.Route(context.Background(), neshan.VehicleTypeCar, neshan.Point{}, neshan.Point{}, false, false, false)
			if err == nil {
				t.Fatal("expected an error, got none")
			}

			var decErr *neshan.DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected a *neshan.DecodeError, got %T: %v", err, err)
			}

			if decErr.Status != tC.status {
				t.Errorf("status = %d, want %d", decErr.Status, tC.status)
			}

			var svcErr *neshan.ServiceError
			if errors.As(err, &svcErr) {
				t.Error("a decoding failure must not double as a service error")
			}
		})
	}
}

func TestReverseGeocode(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"formatted_address":"تهران، قزل قلعه، خیابان کارگر شمالی","route_name":"کارگر شمالی","neighbourhood":"قزل قلعه","city":"تهران","state":"استان تهران","place":null,"municipality_zone":"6","in_traffic_zone":true,"in_odd_even_zone":false}`)
	}))
	defer srv.Close()

	client, err := neshan.New("secret", neshan.WithBaseURL(srv.URL), neshan.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("unexpected error building client: %v", err)
	}

	address, err := client.ReverseGeocode(context.Background(), neshan.Point{Latitude: 35.731984, Longitude: 51.392684})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery.Get("lat"); got != "35.731984" {
		t.Errorf("lat = %q, want 35.731984", got)
	}

	if got := gotQuery.Get("lng"); got != "51.392684" {
		t.Errorf("lng = %q, want 51.392684", got)
	}

	if address.City != "تهران" {
		t.Errorf("city = %q, want تهران", address.City)
	}

	if address.RouteName != "کارگر شمالی" {
		t.Errorf("route name = %q, want کارگر شمالی", address.RouteName)
	}

	if address.Neighbourhood == nil || *address.Neighbourhood != "قزل قلعه" {
		t.Errorf("neighbourhood = %v, want قزل قلعه", address.Neighbourhood)
	}

	if address.MunicipalityZone == nil || *address.MunicipalityZone != "6" {
		t.Errorf("municipality zone = %v, want 6", address.MunicipalityZone)
	}

	if address.Place != nil {
		t.Errorf("place = %v, want nil", *address.Place)
	}

	if !address.InTrafficZone {
		t.Error("expected the point to be inside the traffic zone")
	}

	if address.InOddEvenZone {
		t.Error("expected the point to be outside the odd-even zone")
	}
}

func TestReverseGeocode_AbsentOptionalFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"formatted_address":"somewhere remote","route_name":"dirt road","city":"کرج","state":"البرز","in_traffic_zone":false,"in_odd_even_zone":false}`)
	}))
	defer srv.Close()

	client, err := neshan.New("secret", neshan.WithBaseURL(srv.URL), neshan.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("unexpected error building client: %v", err)
	}

	address, err := client.ReverseGeocode(context.Background(), neshan.Point{Latitude: 35.8, Longitude: 50.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if address.Neighbourhood != nil {
		t.Errorf("neighbourhood = %q, want nil for an absent field", *address.Neighbourhood)
	}

	if address.Place != nil {
		t.Errorf("place = %q, want nil for an absent field", *address.Place)
	}

	if address.MunicipalityZone != nil {
		t.Errorf("municipality zone = %q, want nil for an absent field", *address.MunicipalityZone)
	}
}

func TestReverseGeocode_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"code":403,"message":"API key is expired"}`)
	}))
	defer srv.Close()

	client, err := neshan.New("secret", neshan.WithBaseURL(srv.URL), neshan.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("unexpected error building client: %v", err)
	}

	_, err = client.ReverseGeocode(context.Background(), neshan.Point{Latitude: 35.8, Longitude: 50.9})

	var svcErr *neshan.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected a *neshan.ServiceError, got %T: %v", err, err)
	}

	if svcErr.Code != 403 || svcErr.Message != "API key is expired" {
		t.Errorf("got {%d %q}, want {403 \"API key is expired\"}", svcErr.Code, svcErr.Message)
	}
}
