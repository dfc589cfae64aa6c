package pricing

import (
	"testing"

	"pricing-simulator/internal/model"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func productRow(id, name, category string, cost, price float64) model.ProductRow {
	return model.ProductRow{
		ProductID:    strPtr(id),
		ProductName:  strPtr(name),
		Category:     strPtr(category),
		BaseCost:     f64Ptr(cost),
		CurrentPrice: f64Ptr(price),
	}
}

func obsRow(date, id string, price, volume float64) model.ObservationRow {
	return model.ObservationRow{
		Date:      strPtr(date),
		ProductID: strPtr(id),
		Price:     f64Ptr(price),
		Volume:    f64Ptr(volume),
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	sess, err := NewSession(DefaultParams())
	require.NoError(t, err)
	return sess
}
