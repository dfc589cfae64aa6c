package models

// SessionResponse is returned when a new session is created.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// LoadResponse summarizes a successful data load.
type LoadResponse struct {
	Message string `json:"message"`
	Rows    int    `json:"rows"`
}

// ElasticityResult is the per-product demand model summary.
type ElasticityResult struct {
	ProductID  string  `json:"product_id"`
	Elasticity float64 `json:"elasticity"`
	RSquared   float64 `json:"r_squared"`
	IsModeled  bool    `json:"is_modeled"`
}

// ElasticitiesResponse maps product id to its fitted result.
type ElasticitiesResponse struct {
	Elasticities map[string]ElasticityResult `json:"elasticities"`
}

// ProductInfo is one catalog entry joined with its elasticity, if computed.
type ProductInfo struct {
	ProductID    string   `json:"product_id"`
	ProductName  string   `json:"product_name"`
	Category     string   `json:"category"`
	BaseCost     float64  `json:"base_cost"`
	CurrentPrice float64  `json:"current_price"`
	Elasticity   *float64 `json:"elasticity"`
	RSquared     *float64 `json:"r_squared"`
	IsModeled    *bool    `json:"is_modeled"`
}

// SimulationRow is one per-product scenario projection.
type SimulationRow struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`

	OldPrice       float64 `json:"old_price"`
	NewPrice       float64 `json:"new_price"`
	PriceChangePct float64 `json:"price_change_pct"`

	Elasticity float64 `json:"elasticity"`

	OldVolume       float64 `json:"old_volume"`
	NewVolume       float64 `json:"new_volume"`
	VolumeChangePct float64 `json:"volume_change_pct"`

	OldRevenue       float64 `json:"old_revenue"`
	NewRevenue       float64 `json:"new_revenue"`
	RevenueChangePct float64 `json:"revenue_change_pct"`

	OldProfit       float64 `json:"old_profit"`
	NewProfit       float64 `json:"new_profit"`
	ProfitChangePct float64 `json:"profit_change_pct"`
}

// SimulationResponse is the full scenario output in catalog order.
type SimulationResponse struct {
	Results []SimulationRow `json:"results"`
}

// OptimizationResponse maps product id to the recommended fractional
// price change.
type OptimizationResponse struct {
	Objective       string             `json:"objective"`
	MinMargin       float64            `json:"min_margin"`
	MaxChange       float64            `json:"max_change"`
	Recommendations map[string]float64 `json:"recommendations"`
}

// DemoResponse summarizes a demo dataset load.
type DemoResponse struct {
	Message       string                      `json:"message"`
	ProductsCount int                         `json:"products_count"`
	HistoryRows   int                         `json:"history_rows"`
	Elasticities  map[string]ElasticityResult `json:"elasticities"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
