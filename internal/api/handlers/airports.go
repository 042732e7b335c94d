package handlers

import (
	"flight-sun-service/internal/api/dto"
	"flight-sun-service/internal/ports"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AirportHandler exposes read-only airport registry endpoints.
type AirportHandler struct {
	Repo ports.AirportRepository
}

func (h *AirportHandler) List(c *gin.Context) {
	airports, err := h.Repo.ListAirports(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(fmt.Errorf("list airports: %w", err), http.StatusInternalServerError))
		return
	}

	res := dto.ListAirportsResponse{
		Airports: make([]dto.AirportResponse, 0, len(airports)),
	}
	for _, a := range airports {
		res.Airports = append(res.Airports, dto.FromAirport(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *AirportHandler) Get(c *gin.Context) {
	a, err := h.Repo.GetAirport(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithError(c, fromAppError(err, http.StatusNotFound))
		return
	}

	c.JSON(http.StatusOK, dto.FromAirport(a))
}
