package pricing

import (
	"math"
	"testing"

	"pricing-simulator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace_FivePointsIncludesEndpoints(t *testing.T) {
	got := linspace(-0.2, 0.2, 5)
	want := []float64{-0.2, -0.1, 0, 0.1, 0.2}
	require.Len(t, got, 5)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
	assert.Equal(t, -0.2, got[0])
	assert.Equal(t, 0.2, got[4])
}

func TestParseObjective(t *testing.T) {
	for _, s := range []string{"profit", "revenue", "volume"} {
		obj, err := ParseObjective(s)
		require.NoError(t, err)
		assert.Equal(t, Objective(s), obj)
	}

	obj, err := ParseObjective("")
	require.NoError(t, err)
	assert.Equal(t, ObjectiveProfit, obj)

	_, err = ParseObjective("margin")
	assert.Error(t, err)
}

func TestOptimize_ZeroMaxChange(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "A", "X", 1, 10),
		productRow("P002", "B", "X", 2, 20),
	}))

	recs, err := sess.Optimize(ObjectiveProfit, 0.0, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, recs["P001"])
	assert.Equal(t, 0.0, recs["P002"])
}

func TestOptimize_MarginConstraintFallsBackToZero(t *testing.T) {
	sess := newTestSession(t)
	// Best achievable margin is (12*1.2-10)/(12*1.2) = 0.306, below 0.5,
	// so every candidate is discarded and the 0.0 default survives.
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "Thin Margin", "X", 10, 12),
	}))

	recs, err := sess.Optimize(ObjectiveProfit, 0.5, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, recs["P001"])
}

func TestOptimize_RecommendationsAreMarginFeasibleOrZero(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "A", "X", 10, 18),
		productRow("P002", "B", "X", 5, 9.99),
		productRow("P003", "C", "X", 150, 299),
		productRow("P004", "D", "X", 10, 11),
	}))

	minMargin := 0.25
	recs, err := sess.Optimize(ObjectiveProfit, minMargin, 0.2)
	require.NoError(t, err)

	for _, p := range sess.Products() {
		change := recs[p.ProductID]
		if change == 0 {
			continue
		}
		newPrice := p.CurrentPrice * (1 + change)
		assert.GreaterOrEqual(t, model.Margin(newPrice, p.BaseCost), minMargin,
			"product %s recommended an infeasible change", p.ProductID)
	}
}

func TestOptimize_VolumeObjectivePrefersPriceCut(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "Elastic", "X", 1, 10),
	}))

	// Default elasticity -1.0: volume is maximized at the lowest price.
	recs, err := sess.Optimize(ObjectiveVolume, 0.0, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, recs["P001"], 1e-12)
}

func TestOptimize_TieKeepsSmallestChange(t *testing.T) {
	params := DefaultParams()
	params.DefaultElasticity = 0 // volume identical for every candidate
	sess, err := NewSession(params)
	require.NoError(t, err)
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "Inelastic", "X", 1, 10),
	}))

	recs, err := sess.Optimize(ObjectiveVolume, 0.0, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, recs["P001"], 1e-12)
}

func TestOptimize_ProfitPrefersRaiseForInelasticProduct(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "Filters", "Accessories", 0.5, 2.99),
	}))
	// Fit a weakly elastic demand curve so a price raise wins on profit.
	rows := []model.ObservationRow{}
	for i, p := range []float64{2.5, 2.7, 2.9, 3.1, 3.3, 3.5} {
		q := 2000 * math.Pow(p/2.99, -0.5)
		rows = append(rows, obsRow(time2date(2023, 1, 1+7*i), "P001", p, q))
	}
	require.NoError(t, sess.LoadObservations(rows))
	_, err := sess.ComputeElasticities()
	require.NoError(t, err)

	recs, err := sess.Optimize(ObjectiveProfit, 0.0, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, recs["P001"], 1e-12)
}

func TestOptimize_EmptyObjectiveBehavesAsProfit(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "A", "X", 1, 10),
	}))

	want, err := sess.Optimize(ObjectiveProfit, 0.0, 0.2)
	require.NoError(t, err)
	got, err := sess.Optimize(Objective(""), 0.0, 0.2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOptimize_InvalidObjective(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.LoadCatalog([]model.ProductRow{
		productRow("P001", "A", "X", 1, 10),
	}))

	_, err := sess.Optimize(Objective("margin"), 0.1, 0.2)
	assert.Error(t, err)
}

func TestOptimize_NoCatalog(t *testing.T) {
	sess := newTestSession(t)

	_, err := sess.Optimize(ObjectiveProfit, 0.1, 0.2)
	require.Error(t, err)

	var sErr *StateError
	assert.ErrorAs(t, err, &sErr)
}
