package greenops

import (
	"math"
	"strings"
)

// carbonUnitFactor returns the factor converting unit to kilograms.
// Matching is case-insensitive; the CO2e suffix is optional.
func carbonUnitFactor(unit string) (float64, bool) {
	switch strings.TrimSuffix(strings.ToLower(unit), "co2e") {
	case "g":
		return GramsToKg, true
	case "kg":
		return KgToKg, true
	case "t":
		return TonsToKg, true
	case "lb":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// waterUnitFactor returns the factor converting unit to litres.
func waterUnitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "l", "liter", "liters", "litre", "litres":
		return LitersToLiters, true
	case "m3":
		return CubicMetersToLiters, true
	case "gal", "gallon", "gallons":
		return GallonsToLiters, true
	default:
		return 0, false
	}
}

// distanceUnitFactor returns the factor converting unit to kilometres.
func distanceUnitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "km":
		return KmToKm, true
	case "m":
		return MetersToKm, true
	case "mi", "mile", "miles":
		return MilesToKm, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts a carbon quantity to kilograms.
// Recognized units: g, kg, t, lb with an optional CO2e suffix.
func NormalizeToKg(value float64, unit string) (float64, error) {
	factor, ok := carbonUnitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return normalize(value, factor)
}

// NormalizeToLiters converts a water quantity to litres.
// Recognized units: l, m3, gal.
func NormalizeToLiters(value float64, unit string) (float64, error) {
	factor, ok := waterUnitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return normalize(value, factor)
}

// NormalizeToKm converts a distance to kilometres.
// Recognized units: km, m, mi.
func NormalizeToKm(value float64, unit string) (float64, error) {
	factor, ok := distanceUnitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return normalize(value, factor)
}

func normalize(value, factor float64) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}
	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}
	return result, nil
}

// IsRecognizedUnit reports whether unit converts into the base unit of the
// profile field named key. Count fields accept no unit.
func IsRecognizedUnit(key, unit string) bool {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return false
	}
	_, err := f.kind.normalize(1, unit)
	return err == nil
}
