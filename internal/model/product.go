package model

// Product is one catalog entry. The catalog is loaded wholesale and is
// immutable until the next load; ProductID is the unique key.
type Product struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	BaseCost     float64 `json:"base_cost"`
	CurrentPrice float64 `json:"current_price"`
}

// Margin is the fraction of price remaining after unit cost,
// (price - cost) / price.
func Margin(price, cost float64) float64 {
	return (price - cost) / price
}
