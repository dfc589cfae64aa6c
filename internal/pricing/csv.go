package pricing

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteSimulationCSV(path string, rows []SimulationRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"product_id",
		"product_name",
		"category",
		"old_price",
		"new_price",
		"price_change_pct",
		"elasticity",
		"old_volume",
		"new_volume",
		"volume_change_pct",
		"old_revenue",
		"new_revenue",
		"revenue_change_pct",
		"old_profit",
		"new_profit",
		"profit_change_pct",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			r.ProductID,
			r.ProductName,
			r.Category,
			fmtFloat(r.OldPrice),
			fmtFloat(r.NewPrice),
			fmtFloat(r.PriceChangePct),
			fmtFloat(r.Elasticity),
			fmtFloat(r.OldVolume),
			fmtFloat(r.NewVolume),
			fmtFloat(r.VolumeChangePct),
			fmtFloat(r.OldRevenue),
			fmtFloat(r.NewRevenue),
			fmtFloat(r.RevenueChangePct),
			fmtFloat(r.OldProfit),
			fmtFloat(r.NewProfit),
			fmtFloat(r.ProfitChangePct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
