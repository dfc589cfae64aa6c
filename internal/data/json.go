package data

import (
	"os"

	"pricing-simulator/internal/model"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadCatalogJSON reads a product catalog file: a JSON array of rows with
// product_id, product_name, category, base_cost and current_price.
func LoadCatalogJSON(path string) ([]model.ProductRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}
	var rows []model.ProductRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}
	return rows, nil
}

// LoadHistoryJSON reads a historical observations file: a JSON array of rows
// with date, product_id, price and volume.
func LoadHistoryJSON(path string) ([]model.ObservationRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read history file")
	}
	var rows []model.ObservationRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Wrap(err, "parse history file")
	}
	return rows, nil
}

// LoadChangesJSON reads a scenario file: a JSON object mapping product_id to
// fractional price change.
func LoadChangesJSON(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read changes file")
	}
	changes := map[string]float64{}
	if err := json.Unmarshal(raw, &changes); err != nil {
		return nil, errors.Wrap(err, "parse changes file")
	}
	return changes, nil
}
