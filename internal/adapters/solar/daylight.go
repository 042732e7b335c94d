package solar

import (
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/ports"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunriseDaylight looks up sunrise and sunset with go-sunrise. Times are
// returned in UTC for the UTC calendar date of t.
type SunriseDaylight struct{}

var _ ports.DaylightProvider = SunriseDaylight{}

func (SunriseDaylight) Daylight(point domain.GeoPoint, t time.Time) (time.Time, time.Time) {
	d := t.UTC()
	rise, set := sunrise.SunriseSunset(point.Latitude, point.Longitude, d.Year(), d.Month(), d.Day())
	return rise.UTC(), set.UTC()
}
