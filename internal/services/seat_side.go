package services

import "flight-sun-service/internal/domain"

// Tally of sun exposure per side of the cabin.
type SideSelection struct {
	Side            domain.Side
	Percentage      float64
	LeftPercentage  float64
	RightPercentage float64
}

// SelectSide picks the side of the cabin with less direct sun.
//
// Samples with the sun below the horizon are not tallied but still count in
// the denominator, so a flight entirely in darkness scores 0% on both sides.
// The comparison is strict: equal exposure recommends the right side.
func SelectSide(samples []domain.SunSample, heading float64) SideSelection {
	if len(samples) == 0 {
		return SideSelection{Side: domain.SideRight}
	}

	left, right := 0, 0
	for _, s := range samples {
		side, lit := s.SideFor(heading)
		if !lit {
			continue
		}
		if side == domain.SideLeft {
			left++
		} else {
			right++
		}
	}

	total := float64(len(samples))
	leftPct := float64(left) / total * 100
	rightPct := float64(right) / total * 100

	if leftPct < rightPct {
		return SideSelection{Side: domain.SideLeft, Percentage: leftPct, LeftPercentage: leftPct, RightPercentage: rightPct}
	}
	return SideSelection{Side: domain.SideRight, Percentage: rightPct, LeftPercentage: leftPct, RightPercentage: rightPct}
}
