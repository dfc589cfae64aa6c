package model

// ElasticityResult is the fitted demand model summary for one product.
//
// IsModeled=false means the product had too few valid observations and the
// elasticity is an assumed default, not a regression estimate. Callers must
// branch on this flag; an absent result means "not yet computed", which is a
// different state again.
type ElasticityResult struct {
	ProductID  string  `json:"product_id"`
	Elasticity float64 `json:"elasticity"`
	RSquared   float64 `json:"r_squared"`
	IsModeled  bool    `json:"is_modeled"`
}
