package pricing

// SimulationRow is one row of per-product scenario output.
// This is the primary artifact for "what a price change does".
type SimulationRow struct {
	ProductID   string
	ProductName string
	Category    string

	OldPrice       float64
	NewPrice       float64
	PriceChangePct float64

	Elasticity float64

	OldVolume       float64
	NewVolume       float64
	VolumeChangePct float64

	OldRevenue       float64
	NewRevenue       float64
	RevenueChangePct float64

	OldProfit       float64
	NewProfit       float64
	ProfitChangePct float64
}

// projection holds the first-order demand response to one candidate price
// change, shared between the simulator and the optimizer.
type projection struct {
	NewPrice  float64
	NewVolume float64
	Revenue   float64
	Profit    float64
}

// project applies the first-order constant-elasticity approximation:
// volume moves by elasticity * pct. New volume is passed through unfloored;
// a large price increase on an elastic product can project negative demand.
func project(currentPrice, baseCost, baseVolume, elasticity, pctChange float64) projection {
	newPrice := currentPrice * (1 + pctChange)
	newVolume := baseVolume * (1 + elasticity*pctChange)
	return projection{
		NewPrice:  newPrice,
		NewVolume: newVolume,
		Revenue:   newPrice * newVolume,
		Profit:    (newPrice - baseCost) * newVolume,
	}
}

// Simulate projects the financial effect of the proposed fractional price
// changes (0.10 = +10%). Products absent from the map are simulated at 0.0
// change. Output has one row per catalog product, in catalog order; the call
// fails entirely if no catalog is loaded.
func (s *Session) Simulate(priceChanges map[string]float64) ([]SimulationRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.products) == 0 {
		return nil, errCatalogNotLoaded()
	}

	rows := make([]SimulationRow, 0, len(s.products))
	for _, p := range s.products {
		pct := priceChanges[p.ProductID]
		elasticity := s.elasticityOrDefault(p.ProductID)
		baseVolume := s.baseVolume(p.ProductID)

		proj := project(p.CurrentPrice, p.BaseCost, baseVolume, elasticity, pct)

		oldRevenue := p.CurrentPrice * baseVolume
		oldProfit := (p.CurrentPrice - p.BaseCost) * baseVolume

		rows = append(rows, SimulationRow{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Category:    p.Category,

			OldPrice:       p.CurrentPrice,
			NewPrice:       proj.NewPrice,
			PriceChangePct: pct,

			Elasticity: elasticity,

			OldVolume:       baseVolume,
			NewVolume:       proj.NewVolume,
			VolumeChangePct: elasticity * pct,

			OldRevenue:       oldRevenue,
			NewRevenue:       proj.Revenue,
			RevenueChangePct: pctDelta(oldRevenue, proj.Revenue),

			OldProfit:       oldProfit,
			NewProfit:       proj.Profit,
			ProfitChangePct: pctDelta(oldProfit, proj.Profit),
		})
	}
	return rows, nil
}

// pctDelta is (new-old)/old with a divide-by-zero guard: a zero baseline
// reports a 0 change rather than raising.
func pctDelta(oldVal, newVal float64) float64 {
	if oldVal == 0 {
		return 0
	}
	return (newVal - oldVal) / oldVal
}
