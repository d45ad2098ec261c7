package greenops

import "math"

// Solar is a rooftop solar estimate.
type Solar struct {
	CapacityKW        float64 `json:"capacity_kw"`
	MonthlyGeneration float64 `json:"monthly_generation_units"`
	MonthlyCO2SavedKg float64 `json:"monthly_co2_saved_kg"`
}

// SolarProjection estimates capacity, monthly generation (kWh) and the CO2
// that generation offsets on the grid.
func SolarProjection(areaM2 float64) Solar {
	capacity := Clamp(areaM2) * PanelEfficiency
	generation := capacity * AvgSunlightHours * DaysPerMonth
	return Solar{
		CapacityKW:        capacity,
		MonthlyGeneration: generation,
		MonthlyCO2SavedKg: generation * ElectricityKgPerKWh,
	}
}

// Rounded applies display rounding: capacity to one decimal, the monthly
// figures to whole units.
func (s Solar) Rounded() Solar {
	const tenths = 10
	return Solar{
		CapacityKW:        math.Round(s.CapacityKW*tenths) / tenths,
		MonthlyGeneration: math.Round(s.MonthlyGeneration),
		MonthlyCO2SavedKg: math.Round(s.MonthlyCO2SavedKg),
	}
}
