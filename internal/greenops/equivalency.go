package greenops

import (
	"fmt"
	"math"
)

// Calculate converts a carbon quantity into miles driven, smartphones charged
// and tree-years of absorption.
//
// Inputs below MinEquivalencyThresholdKg produce an empty output and no error,
// since the comparisons become meaninglessly small. Unit and range problems
// return an empty output together with the normalization error.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	trees := TreeYears(kg)

	if math.IsInf(miles, 0) || math.IsInf(phones, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	milesFormatted := formatEquivalencyValue(miles)
	phonesFormatted := formatEquivalencyValue(phones)

	return EquivalencyOutput{
		InputKg: kg,
		Results: []EquivalencyResult{
			{Type: EquivalencyMilesDriven, Value: miles, FormattedValue: milesFormatted, Label: "miles driven"},
			{Type: EquivalencySmartphonesCharged, Value: phones, FormattedValue: phonesFormatted, Label: "smartphones charged"},
			{Type: EquivalencyTreeYears, Value: trees, FormattedValue: FormatFloat(trees, 1), Label: "tree-years of absorption"},
		},
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			milesFormatted, phonesFormatted),
	}, nil
}

// CalculateKg is Calculate for a value already in kilograms.
func CalculateKg(kg float64) EquivalencyOutput {
	out, err := Calculate(CarbonInput{Value: kg, Unit: "kg"})
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}
	}
	return out
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
