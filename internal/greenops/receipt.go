package greenops

import "math"

// DaysPerYear spreads a tree's annual absorption over single days.
const DaysPerYear = 365

// Receipt is the one-day "planet receipt" with the trees needed to absorb the
// day's carbon and the savings against the city benchmarks.
type Receipt struct {
	CarbonKg         float64 `json:"carbon_kg"`
	WaterLiters      float64 `json:"water_liters"`
	TreesPerDay      float64 `json:"trees_per_day"`
	WaterSavedLiters float64 `json:"water_saved_liters"`
	CarbonSavedKg    float64 `json:"carbon_saved_kg"`
}

// ReceiptFor builds the receipt for a day's carbon and water. Savings are
// floored at zero; a day above the benchmark saves nothing.
func ReceiptFor(carbonKg, waterLiters float64) Receipt {
	carbonKg = Clamp(carbonKg)
	waterLiters = Clamp(waterLiters)
	return Receipt{
		CarbonKg:         carbonKg,
		WaterLiters:      waterLiters,
		TreesPerDay:      carbonKg / (TreeAnnualAbsorptionKg / DaysPerYear),
		WaterSavedLiters: math.Max(0, WaterBenchmarkLiters-waterLiters),
		CarbonSavedKg:    math.Max(0, CarbonBenchmarkKg-carbonKg),
	}
}
