package pricing

import (
	"fmt"
	"math"

	"pricing-simulator/internal/model"
)

// Objective selects which projected metric the optimizer maximizes.
type Objective string

const (
	ObjectiveProfit  Objective = "profit"
	ObjectiveRevenue Objective = "revenue"
	ObjectiveVolume  Objective = "volume"
)

// ParseObjective validates a string objective at the boundary. Unrecognized
// values are rejected outright instead of silently scoring every candidate
// at zero.
func ParseObjective(s string) (Objective, error) {
	switch Objective(s) {
	case ObjectiveProfit, ObjectiveRevenue, ObjectiveVolume:
		return Objective(s), nil
	case "":
		return ObjectiveProfit, nil
	}
	return "", fmt.Errorf("unknown objective %q (want profit, revenue or volume)", s)
}

// Optimize grid-searches a recommended fractional price change per product,
// independently: GridPoints candidates evenly spaced over
// [-maxChange, +maxChange], hard-filtered by the minimum margin on the new
// price, scored with the same first-order projection as Simulate.
//
// Candidates are evaluated in ascending order and only a strictly greater
// target wins, so among equal maxima the smallest change is kept. When every
// candidate violates the margin constraint the recommendation stays at the
// 0.0 default (which is itself not margin-checked).
func (s *Session) Optimize(objective Objective, minMargin, maxChange float64) (map[string]float64, error) {
	objective, err := ParseObjective(string(objective))
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.products) == 0 {
		return nil, errCatalogNotLoaded()
	}

	candidates := linspace(-maxChange, maxChange, s.params.GridPoints)

	recommendations := make(map[string]float64, len(s.products))
	for _, p := range s.products {
		elasticity := s.elasticityOrDefault(p.ProductID)
		baseVolume := s.baseVolume(p.ProductID)

		bestVal := math.Inf(-1)
		bestChange := 0.0

		for _, change := range candidates {
			proj := project(p.CurrentPrice, p.BaseCost, baseVolume, elasticity, change)
			if model.Margin(proj.NewPrice, p.BaseCost) < minMargin {
				continue
			}

			var target float64
			switch objective {
			case ObjectiveProfit:
				target = proj.Profit
			case ObjectiveRevenue:
				target = proj.Revenue
			case ObjectiveVolume:
				target = proj.NewVolume
			}

			if target > bestVal {
				bestVal = target
				bestChange = change
			}
		}

		recommendations[p.ProductID] = bestChange
	}
	return recommendations, nil
}

// linspace returns n evenly spaced values over [lo, hi], endpoints included.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	// Pin the last point to avoid rounding drift off the endpoint.
	out[n-1] = hi
	return out
}
