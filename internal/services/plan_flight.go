package services

import (
	"context"
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/platform/apperrors"
	"flight-sun-service/internal/platform/obs"
	"flight-sun-service/internal/ports"
	"fmt"
	"log/slog"
	"time"
)

type PlanFlightRequest struct {
	DepartureCode string
	ArrivalCode   string
	DepartAt      time.Time
}

// FlightPlanner resolves airport codes and runs the exposure engine.
type FlightPlanner struct {
	Airports ports.AirportRepository
	Engine   *Engine
	Daylight ports.DaylightProvider
	Logger   *slog.Logger
}

// PlanFlight resolves both airports, computes sun exposure and attaches the
// sunrise/sunset windows at each end of the flight.
func (p *FlightPlanner) PlanFlight(ctx context.Context, req PlanFlightRequest) (_ *domain.FlightPlan, err error) {
	defer obs.Time(ctx, p.Logger, "flight.Plan")(&err)

	if req.DepartAt.IsZero() {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "departure time is required", nil)
	}

	dep, err := p.Airports.GetAirport(ctx, domain.NormalizeCode(req.DepartureCode))
	if err != nil {
		return nil, fmt.Errorf("plan flight: resolve departure %q: %w", req.DepartureCode, err)
	}

	arr, err := p.Airports.GetAirport(ctx, domain.NormalizeCode(req.ArrivalCode))
	if err != nil {
		return nil, fmt.Errorf("plan flight: resolve arrival %q: %w", req.ArrivalCode, err)
	}

	result, err := p.Engine.Calculate(*dep, *arr, req.DepartAt)
	if err != nil {
		return nil, fmt.Errorf("plan flight: %w", err)
	}

	plan := &domain.FlightPlan{Exposure: result}
	if p.Daylight != nil {
		plan.DepartureDaylight = p.daylight(*dep, req.DepartAt)
		plan.ArrivalDaylight = p.daylight(*arr, result.Profile.ArrivalTime())
	}

	p.Logger.Info("flight planned",
		"req_id", obs.RequestID(ctx),
		"departure", dep.Code,
		"arrival", arr.Code,
		"duration_min", result.Profile.DurationMinutes,
		"samples", len(result.Samples),
		"side", result.RecommendedSide,
		"exposure_pct", result.ExposurePercentage,
	)

	return plan, nil
}

func (p *FlightPlanner) daylight(a domain.Airport, at time.Time) domain.DaylightWindow {
	rise, set := p.Daylight.Daylight(a.Location, at)
	return domain.DaylightWindow{AirportCode: a.Code, Sunrise: rise, Sunset: set}
}
