package greenops

import (
	"fmt"
	"strings"
)

// Stress classifies a daily footprint against fixed bands.
type Stress string

const (
	StressLow    Stress = "Low"
	StressMedium Stress = "Medium"
	StressHigh   Stress = "High"
)

// WaterStress classifies daily litres.
func WaterStress(liters float64) Stress {
	switch {
	case liters < WaterStressLowBelow:
		return StressLow
	case liters < WaterStressMediumBelow:
		return StressMedium
	default:
		return StressHigh
	}
}

// CarbonStress classifies daily kg CO2e.
func CarbonStress(kg float64) Stress {
	switch {
	case kg < CarbonStressLowBelow:
		return StressLow
	case kg < CarbonStressMedBelow:
		return StressMedium
	default:
		return StressHigh
	}
}

// Range is a display horizon expressed as a day multiplier.
type Range int

const (
	RangeDaily   Range = 1
	RangeWeekly  Range = 7
	RangeMonthly Range = 30
)

// ParseRange accepts daily, weekly or monthly (case-insensitive).
func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "daily", "day":
		return RangeDaily, nil
	case "weekly", "week":
		return RangeWeekly, nil
	case "monthly", "month":
		return RangeMonthly, nil
	default:
		return 0, fmt.Errorf("unknown range %q (want daily, weekly or monthly)", s)
	}
}

// Scale multiplies a daily value by the range length.
func (r Range) Scale(daily float64) float64 {
	return daily * float64(r)
}

func (r Range) String() string {
	switch r {
	case RangeDaily:
		return "daily"
	case RangeWeekly:
		return "weekly"
	case RangeMonthly:
		return "monthly"
	default:
		return fmt.Sprintf("Range(%d)", int(r))
	}
}
