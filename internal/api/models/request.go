package models

import "pricing-simulator/internal/model"

// All data-plane requests may carry an optional session_id. An empty id
// targets the server's default session; unknown ids are a 404.

// CatalogRequest carries a full product catalog load.
type CatalogRequest struct {
	SessionID string             `json:"session_id,omitempty"`
	Products  []model.ProductRow `json:"products" binding:"required"`
}

// ObservationsRequest carries a full historical observations load.
type ObservationsRequest struct {
	SessionID    string                 `json:"session_id,omitempty"`
	Observations []model.ObservationRow `json:"observations" binding:"required"`
}

// ElasticitiesRequest triggers elasticity estimation.
type ElasticitiesRequest struct {
	SessionID string `json:"session_id,omitempty"`
}

// SimulationRequest proposes fractional price changes per product
// (e.g. 0.10 = +10%). Products absent from the map are simulated unchanged.
type SimulationRequest struct {
	SessionID    string             `json:"session_id,omitempty"`
	PriceChanges map[string]float64 `json:"price_changes"`
}

// OptimizationRequest asks for recommended price changes.
type OptimizationRequest struct {
	SessionID string   `json:"session_id,omitempty"`
	Objective string   `json:"objective,omitempty"`  // profit (default), revenue, volume
	MinMargin *float64 `json:"min_margin,omitempty"` // default 0.10
	MaxChange *float64 `json:"max_change,omitempty"` // default 0.20
}
