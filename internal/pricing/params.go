package pricing

import "errors"

// Params holds the model constants shared by the estimator, simulator and
// optimizer.
//
// DefaultElasticity is used when a product has no fitted result (either
// never computed, or too few valid observations). FallbackBaseVolume anchors
// projections for products with no history at all.
type Params struct {
	// MinObservations is the minimum number of valid (price>0, volume>0)
	// rows required to fit a regression for a product.
	MinObservations int
	// DefaultElasticity is the assumed elasticity when no model exists.
	DefaultElasticity float64
	// FallbackBaseVolume is the reference demand level for products with
	// no historical observations.
	FallbackBaseVolume float64
	// GridPoints is the number of evenly spaced candidate price changes
	// the optimizer evaluates per product.
	GridPoints int
}

func DefaultParams() Params {
	return Params{
		MinObservations:    5,
		DefaultElasticity:  -1.0,
		FallbackBaseVolume: 1000,
		GridPoints:         5,
	}
}

func (p Params) Validate() error {
	if p.MinObservations < 2 {
		return errors.New("MinObservations must be >= 2")
	}
	if p.FallbackBaseVolume <= 0 {
		return errors.New("FallbackBaseVolume must be > 0")
	}
	if p.GridPoints < 2 {
		return errors.New("GridPoints must be >= 2")
	}
	return nil
}
