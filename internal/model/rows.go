package model

// ProductRow and ObservationRow are the wire/file shapes for dataset loads.
// Fields are pointers so a missing field can be told apart from a zero value;
// presence is validated when the rows are loaded into a session.

type ProductRow struct {
	ProductID    *string  `json:"product_id"`
	ProductName  *string  `json:"product_name"`
	Category     *string  `json:"category"`
	BaseCost     *float64 `json:"base_cost"`
	CurrentPrice *float64 `json:"current_price"`
}

type ObservationRow struct {
	Date      *string  `json:"date"`
	ProductID *string  `json:"product_id"`
	Price     *float64 `json:"price"`
	Volume    *float64 `json:"volume"`
}
