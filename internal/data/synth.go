package data

import (
	"math"
	"math/rand"
	"time"

	"pricing-simulator/internal/model"
)

// DemoSeed makes the demo dataset reproducible across runs.
const DemoSeed = 42

// DemoData is a synthetic coffee-shop dataset: a small catalog plus a year
// of weekly observations whose volumes follow known constant-elasticity
// demand curves with multiplicative noise. The estimator should recover
// elasticities close to the true values below.
type DemoData struct {
	Products []model.ProductRow
	History  []model.ObservationRow
}

type demoProduct struct {
	ID           string
	Name         string
	Category     string
	BaseCost     float64
	CurrentPrice float64
	BaseVolume   float64
	Elasticity   float64
}

var demoProducts = []demoProduct{
	{"P001", "Premium Coffee Beans", "Coffee", 10.0, 18.0, 500, -1.2},
	{"P002", "Standard Coffee Ground", "Coffee", 5.0, 9.99, 1200, -0.8},
	{"P003", "Espresso Machine", "Equipment", 150.0, 299.0, 50, -1.5},
	{"P004", "Coffee Filters (100pk)", "Accessories", 0.50, 2.99, 2000, -0.5},
	{"P005", "Dark Roast Whole Bean", "Coffee", 11.0, 19.50, 450, -1.1},
	{"P006", "Light Roast Blend", "Coffee", 9.0, 16.0, 600, -1.3},
}

// GenerateDemoData builds the synthetic dataset: 52 weekly rows per product,
// price jittered +/-10% around the list price, volume drawn from the true
// demand curve with ~5% noise and floored at zero.
func GenerateDemoData(seed int64) DemoData {
	rng := rand.New(rand.NewSource(seed))

	products := make([]model.ProductRow, 0, len(demoProducts))
	for i := range demoProducts {
		p := demoProducts[i]
		products = append(products, model.ProductRow{
			ProductID:    &demoProducts[i].ID,
			ProductName:  &demoProducts[i].Name,
			Category:     &demoProducts[i].Category,
			BaseCost:     &p.BaseCost,
			CurrentPrice: &p.CurrentPrice,
		})
	}

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	history := make([]model.ObservationRow, 0, 52*len(demoProducts))
	for week := 0; week < 52; week++ {
		date := start.AddDate(0, 0, 7*week).Format("2006-01-02")
		for i := range demoProducts {
			p := demoProducts[i]

			priceMult := 1 + (rng.Float64()*0.2 - 0.1)
			price := round2(p.CurrentPrice * priceMult)

			volMult := math.Pow(price/p.CurrentPrice, p.Elasticity)
			noise := 1 + rng.NormFloat64()*0.05
			volume := math.Floor(p.BaseVolume * volMult * noise)
			if volume < 0 {
				volume = 0
			}

			d := date
			history = append(history, model.ObservationRow{
				Date:      &d,
				ProductID: &demoProducts[i].ID,
				Price:     &price,
				Volume:    &volume,
			})
		}
	}

	return DemoData{Products: products, History: history}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
