package main

import (
	"flag"
	"fmt"
	"sort"

	"pricing-simulator/internal/data"
	"pricing-simulator/internal/pricing"
)

// Demo:
// - Generate the synthetic coffee-shop dataset
// - Fit elasticities and show how close they land to the true values
// - Simulate a +10% price change on one product
// - Optimize all products for profit
func main() {
	seed := flag.Int64("seed", data.DemoSeed, "Random seed for the synthetic dataset")
	pct := flag.Float64("pct", 0.10, "Price change to simulate on the first product")
	flag.Parse()

	demo := data.GenerateDemoData(*seed)

	sess, err := pricing.NewSession(pricing.DefaultParams())
	if err != nil {
		panic(err)
	}
	if err := sess.LoadCatalog(demo.Products); err != nil {
		panic(err)
	}
	if err := sess.LoadObservations(demo.History); err != nil {
		panic(err)
	}

	results, err := sess.ComputeElasticities()
	if err != nil {
		panic(err)
	}

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("Generated %d products, %d history rows\n\n", len(demo.Products), len(demo.History))
	fmt.Printf("%-10s %-12s %-10s\n", "product", "elasticity", "r^2")
	for _, id := range ids {
		r := results[id]
		fmt.Printf("%-10s %-12.4f %-10.4f\n", r.ProductID, r.Elasticity, r.RSquared)
	}

	first := ids[0]
	rows, err := sess.Simulate(map[string]float64{first: *pct})
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nSimulating %+.0f%% on %s:\n", *pct*100, first)
	for _, r := range rows {
		if r.ProductID != first {
			continue
		}
		fmt.Printf(
			"  price %.2f->%.2f  volume %.1f->%.1f  revenue %.2f->%.2f  profit %.2f->%.2f (%+.1f%%)\n",
			r.OldPrice, r.NewPrice, r.OldVolume, r.NewVolume,
			r.OldRevenue, r.NewRevenue, r.OldProfit, r.NewProfit, r.ProfitChangePct*100,
		)
	}

	recommendations, err := sess.Optimize(pricing.ObjectiveProfit, 0.10, 0.20)
	if err != nil {
		panic(err)
	}

	fmt.Println("\nRecommended changes (objective=profit):")
	for _, id := range ids {
		fmt.Printf("  %-10s %+.1f%%\n", id, recommendations[id]*100)
	}
}
