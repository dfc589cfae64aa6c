package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"pricing-simulator/internal/config"
	"pricing-simulator/internal/data"
	"pricing-simulator/internal/pricing"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "estimate":
		cmdEstimate(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "optimize":
		cmdOptimize(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli estimate --catalog products.json --history history.json")
	fmt.Println("  cli simulate --catalog products.json --history history.json --changes changes.json --out results/simulation.csv")
	fmt.Println("  cli optimize --catalog products.json --history history.json --objective profit --min-margin 0.10 --max-change 0.20")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - estimate fits a log-log demand model per product and prints elasticity + r^2")
	fmt.Println("  - simulate projects revenue/profit for the price changes in changes.json")
	fmt.Println("  - optimize grid-searches a recommended price change per product")
}

func cmdEstimate(args []string) {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	catalogPath := fs.String("catalog", "products.json", "Path to product catalog JSON")
	historyPath := fs.String("history", "history.json", "Path to historical observations JSON")
	cfgPath := fs.String("config", "", "Optional YAML config")
	_ = fs.Parse(args)

	sess := buildSession(*cfgPath, *catalogPath, *historyPath)

	results, err := sess.ComputeElasticities()
	if err != nil {
		panic(err)
	}

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("%-10s %-12s %-10s %-8s\n", "product", "elasticity", "r^2", "modeled")
	for _, id := range ids {
		r := results[id]
		fmt.Printf("%-10s %-12.4f %-10.4f %-8v\n", r.ProductID, r.Elasticity, r.RSquared, r.IsModeled)
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	catalogPath := fs.String("catalog", "products.json", "Path to product catalog JSON")
	historyPath := fs.String("history", "history.json", "Path to historical observations JSON")
	changesPath := fs.String("changes", "", "Path to price changes JSON (product_id -> pct change)")
	outPath := fs.String("out", "results/simulation.csv", "Output CSV path")
	cfgPath := fs.String("config", "", "Optional YAML config")
	_ = fs.Parse(args)

	sess := buildSession(*cfgPath, *catalogPath, *historyPath)
	if _, err := sess.ComputeElasticities(); err != nil {
		panic(err)
	}

	changes := map[string]float64{}
	if *changesPath != "" {
		loaded, err := data.LoadChangesJSON(*changesPath)
		if err != nil {
			panic(err)
		}
		changes = loaded
	}

	rows, err := sess.Simulate(changes)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := pricing.WriteSimulationCSV(*outPath, rows); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), *outPath)
	for _, r := range rows {
		fmt.Printf(
			"%-10s price %7.2f->%7.2f  volume %8.1f->%8.1f  profit %10.2f->%10.2f (%+.1f%%)\n",
			r.ProductID, r.OldPrice, r.NewPrice, r.OldVolume, r.NewVolume,
			r.OldProfit, r.NewProfit, r.ProfitChangePct*100,
		)
	}
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	catalogPath := fs.String("catalog", "products.json", "Path to product catalog JSON")
	historyPath := fs.String("history", "history.json", "Path to historical observations JSON")
	objectiveStr := fs.String("objective", "profit", "Objective: profit, revenue or volume")
	minMargin := fs.Float64("min-margin", 0.10, "Minimum margin on the new price")
	maxChange := fs.Float64("max-change", 0.20, "Symmetric bound on fractional price change")
	cfgPath := fs.String("config", "", "Optional YAML config")
	_ = fs.Parse(args)

	sess := buildSession(*cfgPath, *catalogPath, *historyPath)
	if _, err := sess.ComputeElasticities(); err != nil {
		panic(err)
	}

	objective, err := pricing.ParseObjective(*objectiveStr)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	recommendations, err := sess.Optimize(objective, *minMargin, *maxChange)
	if err != nil {
		panic(err)
	}

	ids := make([]string, 0, len(recommendations))
	for id := range recommendations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("Recommended price changes (objective=%s, min_margin=%.2f, max_change=%.2f):\n",
		objective, *minMargin, *maxChange)
	for _, id := range ids {
		fmt.Printf("  %-10s %+.1f%%\n", id, recommendations[id]*100)
	}
}

func buildSession(cfgPath, catalogPath, historyPath string) *pricing.Session {
	params := pricing.DefaultParams()
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.ModelParams()
	}

	sess, err := pricing.NewSession(params)
	if err != nil {
		panic(err)
	}

	catalog, err := data.LoadCatalogJSON(catalogPath)
	if err != nil {
		panic(err)
	}
	if err := sess.LoadCatalog(catalog); err != nil {
		panic(err)
	}

	history, err := data.LoadHistoryJSON(historyPath)
	if err != nil {
		panic(err)
	}
	if err := sess.LoadObservations(history); err != nil {
		panic(err)
	}

	return sess
}
