package handlers

import (
	"context"
	"flight-sun-service/internal/api/dto"
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FlightPlanner is the service behind the calculate endpoint.
type FlightPlanner interface {
	PlanFlight(ctx context.Context, req services.PlanFlightRequest) (*domain.FlightPlan, error)
}

type FlightHandler struct {
	Planner FlightPlanner
}

// Calculate computes sun exposure and the recommended seat side for one flight.
// Unknown airports in the body are a bad request rather than a missing resource.
func (h *FlightHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", err.Error(), err))
		return
	}

	departAt, err := dto.ParseTime(req.DepartureTime)
	if err != nil {
		abortWithError(c, fromAppError(err, http.StatusBadRequest))
		return
	}

	plan, err := h.Planner.PlanFlight(c.Request.Context(), services.PlanFlightRequest{
		DepartureCode: req.DepartureAirport,
		ArrivalCode:   req.ArrivalAirport,
		DepartAt:      departAt,
	})
	if err != nil {
		abortWithError(c, fromAppError(err, http.StatusBadRequest))
		return
	}

	c.JSON(http.StatusOK, dto.FromFlightPlan(plan))
}
