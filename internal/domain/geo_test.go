package domain

import (
	"math"
	"testing"
	"time"

	"flight-sun-service/internal/platform/apperrors"
)

func TestNewGeoPointValidates(t *testing.T) {
	cases := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "heathrow", lat: 51.47, lon: -0.4543},
		{name: "north pole", lat: 90, lon: 0},
		{name: "antimeridian", lat: 0, lon: -180},
		{name: "latitude too high", lat: 90.1, lon: 0, wantErr: true},
		{name: "longitude too low", lat: 0, lon: -180.5, wantErr: true},
		{name: "nan latitude", lat: math.NaN(), lon: 0, wantErr: true},
		{name: "infinite longitude", lat: 0, lon: math.Inf(1), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewGeoPoint(tc.lat, tc.lon)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for (%v, %v)", tc.lat, tc.lon)
				}
				if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
					t.Fatalf("error code = %q, want %q", apperrors.Code(err), apperrors.CodeInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Latitude != tc.lat || p.Longitude != tc.lon {
				t.Fatalf("point = %v, want (%v, %v)", p, tc.lat, tc.lon)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  lhr "); got != "LHR" {
		t.Fatalf("NormalizeCode = %q, want LHR", got)
	}
}

func TestFlightProfileArrivalTime(t *testing.T) {
	depart := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
	f := FlightProfile{DepartureTime: depart, DurationMinutes: 93}

	if want := depart.Add(93 * time.Minute); !f.ArrivalTime().Equal(want) {
		t.Fatalf("ArrivalTime = %v, want %v", f.ArrivalTime(), want)
	}
}
