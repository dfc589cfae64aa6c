package model

import "time"

// Observation is one historical price/volume sample for a product.
//
// Rows with non-positive price or volume are kept at load time and only
// filtered out when fitting the demand model; the simulator's base volume
// deliberately averages over all rows.
type Observation struct {
	Date      time.Time `json:"date"`
	ProductID string    `json:"product_id"`
	Price     float64   `json:"price"`
	Volume    float64   `json:"volume"`
}

// Valid reports whether the observation is usable for elasticity fitting.
func (o Observation) Valid() bool {
	return o.Price > 0 && o.Volume > 0
}
