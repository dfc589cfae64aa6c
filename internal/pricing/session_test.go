package pricing

import (
	"testing"

	"pricing-simulator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_MissingFieldsNamed(t *testing.T) {
	sess := newTestSession(t)

	rows := []model.ProductRow{
		{
			ProductID:    strPtr("P001"),
			ProductName:  strPtr("Premium Coffee Beans"),
			Category:     strPtr("Coffee"),
			CurrentPrice: f64Ptr(18),
			// base_cost missing
		},
		{
			ProductID: strPtr("P002"),
			// product_name, category, base_cost, current_price missing
		},
	}

	err := sess.LoadCatalog(rows)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "product", vErr.Table)
	assert.Contains(t, vErr.Fields, "base_cost")
	assert.Contains(t, vErr.Fields, "product_name")
	assert.Contains(t, vErr.Fields, "current_price")

	// A failed load applies nothing.
	assert.Empty(t, sess.Products())
}

func TestLoadObservations_MissingFieldsNamed(t *testing.T) {
	sess := newTestSession(t)

	rows := []model.ObservationRow{
		{
			ProductID: strPtr("P001"),
			Price:     f64Ptr(10),
			// date and volume missing
		},
	}

	err := sess.LoadObservations(rows)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "historical", vErr.Table)
	assert.Contains(t, vErr.Fields, "date")
	assert.Contains(t, vErr.Fields, "volume")
}

func TestLoadObservations_DateNormalization(t *testing.T) {
	sess := newTestSession(t)

	rows := []model.ObservationRow{
		obsRow("2023-01-15", "P001", 10, 100),
		obsRow("2023-01-22T00:00:00Z", "P001", 11, 90),
	}
	require.NoError(t, sess.LoadObservations(rows))

	bad := []model.ObservationRow{
		obsRow("15/01/2023", "P001", 10, 100),
	}
	err := sess.LoadObservations(bad)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "date")
}

func TestLoadCatalog_ReplacesPrior(t *testing.T) {
	sess := newTestSession(t)

	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "A", "X", 1, 10),
		productRow("P002", "B", "X", 2, 20),
	}))
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P003", "C", "X", 3, 30),
	}))

	products := sess.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "P003", products[0].ProductID)
}

func TestLoadObservations_InvalidValuesAcceptedAtLoad(t *testing.T) {
	sess := newTestSession(t)

	// Non-positive price/volume is a modeling concern, not a load error.
	rows := []model.ObservationRow{
		obsRow("2023-01-01", "P001", 0, 100),
		obsRow("2023-01-08", "P001", 10, -5),
	}
	assert.NoError(t, sess.LoadObservations(rows))
}

func TestSessionIsolation(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)

	require.NoError(t, a.LoadCatalog([]model.ProductRow{
		productRow("P001", "A", "X", 1, 10),
	}))

	assert.NotEmpty(t, a.Products())
	assert.Empty(t, b.Products())

	_, err := b.Simulate(nil)
	assert.Error(t, err)
}
