package greenops

// Emission factors in kg CO2e per unit of activity.
const (
	// CarKgPerKm is the average petrol car emission per kilometre.
	CarKgPerKm = 0.17

	// BusKgPerKm is the per-passenger bus emission per kilometre.
	BusKgPerKm = 0.04

	// ElectricityKgPerKWh is the grid intensity of a coal-heavy mix.
	ElectricityKgPerKWh = 0.82

	// LPGKgPerKg is the combustion emission of one kilogram of LPG.
	LPGKgPerKg = 2.9
)

// Water factors in litres per unit of activity.
const (
	ShowerLitersPerMinute = 9.0
	FlushLiters           = 6.0
	DishwashLitersPerLoad = 12.0
	LaundryLitersPerLoad  = 50.0
)

// City benchmarks are fixed per-person daily averages used as the comparison baseline.
const (
	// CarbonBenchmarkKg is ~200 kg per month amortized to a day.
	CarbonBenchmarkKg = 6.6

	// WaterBenchmarkLiters is the daily per-person city water average.
	WaterBenchmarkLiters = 135.0

	// BenchmarkBonusRatio is the fraction of a benchmark a footprint must stay under
	// to earn the score bonus.
	BenchmarkBonusRatio = 0.8
)

// Eco score composition.
const (
	ScoreBase           = 70
	ScoreBenchmarkBonus = 10
	ScorePerChallenge   = 5
	ScoreMin            = 0
	ScoreMax            = 100
)

// DaysPerMonth amortizes monthly utility figures to a daily rate.
const DaysPerMonth = 30

// Solar constants.
const (
	PanelEfficiency  = 0.15
	AvgSunlightHours = 4.0
)

// TreeAnnualAbsorptionKg is the CO2 one tree absorbs in a year.
const TreeAnnualAbsorptionKg = 21.0

// Per-person daily savings used by the adoption simulator.
const (
	// SimCycleKg replaces a 5 km daily car trip (5 * 0.17).
	SimCycleKg = 0.85

	// SimShortShowerLiters is five shower minutes saved (5 * 9).
	SimShortShowerLiters = 45.0

	// SimSolarKg is the average daily reduction from residential solar.
	SimSolarKg = 0.33

	// SimACSetpointKg is one degree higher AC setpoint (~0.7 kWh * 0.82).
	SimACSetpointKg = 0.59
)

// Stress thresholds, evaluated against unscaled daily values.
const (
	WaterStressLowBelow    = 100.0
	WaterStressMediumBelow = 180.0
	CarbonStressLowBelow   = 4.0
	CarbonStressMedBelow   = 8.0
)

// EPA equivalency factors (2024 edition), used as divisors: equivalency = kg / factor.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822
)

// Unit conversion constants.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592

	LitersToLiters      = 1.0
	CubicMetersToLiters = 1000.0
	GallonsToLiters     = 3.785411784

	KmToKm     = 1.0
	MetersToKm = 0.001
	MilesToKm  = 1.609344
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	MinEquivalencyThresholdKg = 1.0

	// TonneDisplayThresholdKg switches mass display from kilograms to tonnes.
	TonneDisplayThresholdKg = 1000.0

	LargeNumberThreshold = 1_000_000
	BillionThreshold     = 1_000_000_000
)
