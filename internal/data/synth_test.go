package data

import (
	"testing"

	"pricing-simulator/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDemoData_Shape(t *testing.T) {
	demo := GenerateDemoData(DemoSeed)

	require.Len(t, demo.Products, 6)
	require.Len(t, demo.History, 52*6)

	for _, p := range demo.Products {
		require.NotNil(t, p.ProductID)
		require.NotNil(t, p.BaseCost)
		require.NotNil(t, p.CurrentPrice)
		assert.Greater(t, *p.CurrentPrice, 0.0)
		assert.GreaterOrEqual(t, *p.BaseCost, 0.0)
	}
	for _, o := range demo.History {
		require.NotNil(t, o.Date)
		require.NotNil(t, o.Price)
		require.NotNil(t, o.Volume)
		assert.Greater(t, *o.Price, 0.0)
		assert.GreaterOrEqual(t, *o.Volume, 0.0)
	}
}

func TestGenerateDemoData_Deterministic(t *testing.T) {
	a := GenerateDemoData(DemoSeed)
	b := GenerateDemoData(DemoSeed)

	require.Len(t, b.History, len(a.History))
	for i := range a.History {
		assert.Equal(t, *a.History[i].Price, *b.History[i].Price)
		assert.Equal(t, *a.History[i].Volume, *b.History[i].Volume)
	}
}

func TestGenerateDemoData_EstimatorRecoversNegativeElasticities(t *testing.T) {
	demo := GenerateDemoData(DemoSeed)

	sess, err := pricing.NewSession(pricing.DefaultParams())
	require.NoError(t, err)
	require.NoError(t, sess.LoadCatalog(demo.Products))
	require.NoError(t, sess.LoadObservations(demo.History))

	results, err := sess.ComputeElasticities()
	require.NoError(t, err)
	require.Len(t, results, 6)

	for id, r := range results {
		assert.True(t, r.IsModeled, "product %s should have enough data", id)
		assert.Less(t, r.Elasticity, 0.0, "product %s should look like a normal good", id)
		assert.Greater(t, r.RSquared, 0.05, "product %s fit unexpectedly poor", id)
	}
}
