package domain

import "strings"

// An airport known to the registry. Code is the IATA code, upper-case.
type Airport struct {
	Code     string
	Name     string
	City     string
	Country  string
	Location GeoPoint
}

// NormalizeCode trims and upper-cases an airport code for lookups.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
