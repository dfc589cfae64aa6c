package pricing

import (
	"math"

	"pricing-simulator/internal/model"
)

// fit caches the fitted log-log regression for a product so the demand curve
// can be re-evaluated without refitting. Nothing outside the session depends
// on this cache.
type fit struct {
	Slope     float64
	Intercept float64
}

// ComputeElasticities fits a constant-elasticity demand model per product
// from the loaded observations:
//
//	Q = A * P^e  linearizes to  ln(Q) = ln(A) + e*ln(P)
//
// so the OLS slope of ln(volume) on ln(price) recovers e directly. Products
// with fewer than MinObservations valid rows get the assumed default
// elasticity flagged IsModeled=false. The returned map replaces the
// session's prior results entirely.
func (s *Session) ComputeElasticities() (map[string]model.ElasticityResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.observations) == 0 {
		return nil, errObservationsNotLoaded()
	}

	results := make(map[string]model.ElasticityResult, len(s.obsByProduct))
	fits := make(map[string]fit)

	for productID, obs := range s.obsByProduct {
		valid := obs[:0:0]
		for _, o := range obs {
			if o.Valid() {
				valid = append(valid, o)
			}
		}

		if len(valid) < s.params.MinObservations {
			results[productID] = model.ElasticityResult{
				ProductID:  productID,
				Elasticity: s.params.DefaultElasticity,
				RSquared:   0,
				IsModeled:  false,
			}
			continue
		}

		xs := make([]float64, len(valid))
		ys := make([]float64, len(valid))
		for i, o := range valid {
			xs[i] = math.Log(o.Price)
			ys[i] = math.Log(o.Volume)
		}

		slope, intercept, r2 := olsFit(xs, ys)
		results[productID] = model.ElasticityResult{
			ProductID:  productID,
			Elasticity: slope,
			RSquared:   r2,
			IsModeled:  true,
		}
		fits[productID] = fit{Slope: slope, Intercept: intercept}
	}

	s.elasticities = results
	s.fits = fits

	out := make(map[string]model.ElasticityResult, len(results))
	for k, v := range results {
		out[k] = v
	}
	return out, nil
}

// olsFit runs ordinary least squares of y on x with an intercept and returns
// slope, intercept and the coefficient of determination.
func olsFit(xs, ys []float64) (slope, intercept, r2 float64) {
	n := float64(len(xs))
	meanX, meanY := 0.0, 0.0
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	sxx, sxy := 0.0, 0.0
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}

	if sxx == 0 {
		// No price variation: flat fit through the mean.
		return 0, meanY, 0
	}
	slope = sxy / sxx
	intercept = meanY - slope*meanX

	ssRes, ssTot := 0.0, 0.0
	for i := range xs {
		pred := intercept + slope*xs[i]
		ssRes += (ys[i] - pred) * (ys[i] - pred)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}
	if ssTot == 0 {
		return slope, intercept, 1
	}
	return slope, intercept, 1 - ssRes/ssTot
}
