package greenops

import "fmt"

// EquivalencyType is a category of relatable carbon comparison.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeYears converts CO2e to years of absorption by one tree.
	EquivalencyTreeYears
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeYears:
		return "TreeYears"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is a carbon quantity with its unit (g, kg, t, lb, optionally suffixed CO2e).
type CarbonInput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results are in display priority order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose line for reports.
	// Example: "Equivalent to driving ~781 miles or charging ~18,248 smartphones"
	DisplayText string `json:"display_text"`

	// IsEmpty is true when the input was below the display threshold.
	IsEmpty bool `json:"is_empty"`
}
