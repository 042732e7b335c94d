package solar

import (
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/ports"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// EphemerisSolarModel computes the apparent sun position from Meeus'
// low-precision solar theory. Unlike the simplified model it treats t as an
// absolute instant, so the time zone of t matters and longitude is honoured.
// Atmospheric refraction is not applied, and the UT Julian day is passed
// where the solar theory expects dynamical time; the ~70 s Delta T offset
// moves the sun by well under a degree.
type EphemerisSolarModel struct{}

var _ ports.SolarModel = EphemerisSolarModel{}

func (EphemerisSolarModel) Name() string { return "ephemeris" }

func (EphemerisSolarModel) Position(point domain.GeoPoint, t time.Time) (float64, float64) {
	jd := julian.TimeToJD(t.UTC())

	ra, dec := solar.ApparentEquatorial(jd)
	gst := sidereal.Apparent(jd)

	lat := point.Latitude * math.Pi / 180
	lon := point.Longitude * math.Pi / 180

	// Local hour angle, positive west of the meridian.
	h := gst.Angle().Rad() + lon - ra.Rad()

	sinAlt := math.Sin(lat)*dec.Sin() + math.Cos(lat)*dec.Cos()*math.Cos(h)
	alt := math.Asin(math.Max(-1, math.Min(1, sinAlt)))

	// Compass azimuth measured clockwise from north.
	y := -dec.Cos() * math.Sin(h)
	x := dec.Sin()*math.Cos(lat) - dec.Cos()*math.Cos(h)*math.Sin(lat)
	az := math.Atan2(y, x) * 180 / math.Pi

	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	if az >= 360 {
		az = 0
	}

	return az, alt * 180 / math.Pi
}
