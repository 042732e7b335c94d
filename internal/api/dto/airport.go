package dto

import "flight-sun-service/internal/domain"

type AirportResponse struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListAirportsResponse struct {
	Airports []AirportResponse `json:"airports"`
}

func FromAirport(a *domain.Airport) AirportResponse {
	return AirportResponse{
		Code:      a.Code,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Latitude:  a.Location.Latitude,
		Longitude: a.Location.Longitude,
	}
}
