// Package greenops turns self-reported activity into footprint figures.
//
// It holds the fixed factor table, the pure footprint and eco score
// calculators, the solar estimator, stress classification and the EPA-based
// carbon equivalencies used in reports. Every function here is
// deterministic and free of side effects.
package greenops

// DailyCarbonKg returns the daily carbon footprint in kg CO2e.
// Utility inputs are monthly figures and are amortized over DaysPerMonth.
func DailyCarbonKg(p ActivityProfile) float64 {
	transport := Clamp(p.Transport.CarKm)*CarKgPerKm + Clamp(p.Transport.BusKm)*BusKgPerKm
	utilities := Clamp(p.Utilities.ElectricityKWh)*ElectricityKgPerKWh/DaysPerMonth +
		Clamp(p.Utilities.LPGKg)*LPGKgPerKg/DaysPerMonth
	return transport + utilities
}

// DailyWaterLiters returns the daily water use in litres.
// Cooking water is counted 1:1.
func DailyWaterLiters(p ActivityProfile) float64 {
	w := p.Water
	return Clamp(w.ShowerMinutes)*ShowerLitersPerMinute +
		Clamp(w.Flushes)*FlushLiters +
		Clamp(w.DishwashingLoads)*DishwashLitersPerLoad +
		Clamp(w.LaundryLoads)*LaundryLitersPerLoad +
		Clamp(w.CookingLiters)
}

// EcoScore combines footprint-vs-benchmark bonuses with a per-challenge bonus.
// The result is always within [ScoreMin, ScoreMax].
func EcoScore(carbonKg, waterLiters float64, challengeCount int) int {
	score := ScoreBase
	if carbonKg < CarbonBenchmarkKg*BenchmarkBonusRatio {
		score += ScoreBenchmarkBonus
	}
	if waterLiters < WaterBenchmarkLiters*BenchmarkBonusRatio {
		score += ScoreBenchmarkBonus
	}
	if challengeCount > 0 {
		// Cap before multiplying so huge counts cannot overflow.
		if challengeCount > ScoreMax {
			challengeCount = ScoreMax
		}
		score += challengeCount * ScorePerChallenge
	}
	return min(ScoreMax, max(ScoreMin, score))
}

// ProfileScore computes the eco score straight from a profile.
func ProfileScore(p ActivityProfile, challengeCount int) int {
	return EcoScore(DailyCarbonKg(p), DailyWaterLiters(p), challengeCount)
}

// Footprint bundles the daily figures derived from one profile.
type Footprint struct {
	CarbonKg     float64 `json:"carbon_kg"`
	WaterLiters  float64 `json:"water_liters"`
	CarbonStress Stress  `json:"carbon_stress"`
	WaterStress  Stress  `json:"water_stress"`
	Score        int     `json:"score"`
}

// Assess computes the daily footprint, stress levels and score for p.
func Assess(p ActivityProfile, challengeCount int) Footprint {
	carbon := DailyCarbonKg(p)
	water := DailyWaterLiters(p)
	return Footprint{
		CarbonKg:     carbon,
		WaterLiters:  water,
		CarbonStress: CarbonStress(carbon),
		WaterStress:  WaterStress(water),
		Score:        EcoScore(carbon, water, challengeCount),
	}
}

// Scaled returns the footprint totals for a display range.
// Stress levels and the score stay tied to the daily values.
func (f Footprint) Scaled(r Range) Footprint {
	f.CarbonKg = r.Scale(f.CarbonKg)
	f.WaterLiters = r.Scale(f.WaterLiters)
	return f
}

// TreeYears converts kg CO2e into years of absorption by one tree.
func TreeYears(carbonKg float64) float64 {
	return carbonKg / TreeAnnualAbsorptionKg
}
