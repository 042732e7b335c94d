package domain

import (
	"math"
	"time"
)

// Side of the cabin relative to the direction of travel.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Sun position observed from the aircraft at one point of the flight.
// Azimuth is a compass bearing in [0, 360); Elevation is in [-90, 90].
type SunSample struct {
	Azimuth   float64
	Elevation float64
	Time      time.Time
	Position  GeoPoint
	Progress  float64
}

// AboveHorizon reports whether the sun can shine into the cabin.
func (s SunSample) AboveHorizon() bool {
	return s.Elevation >= 0
}

// RelativeBearing returns azimuth measured clockwise from heading, in [0, 360).
func RelativeBearing(azimuth, heading float64) float64 {
	d := math.Mod(azimuth-heading, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// SideFor reports which side of an aircraft flying heading the sun shines
// on. The second result is false when the sun is below the horizon. A sun
// directly ahead or behind counts as right and left respectively.
func (s SunSample) SideFor(heading float64) (Side, bool) {
	if !s.AboveHorizon() {
		return "", false
	}
	rel := RelativeBearing(s.Azimuth, heading)
	if rel >= 90 && rel <= 270 {
		return SideLeft, true
	}
	return SideRight, true
}
