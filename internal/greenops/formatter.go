package greenops

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f rounded to precision decimals, with thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := fmt.Sprintf("%.*f", precision, rounded)
	intPart, frac, ok := strings.Cut(formatted, ".")
	if !ok {
		return formatted
	}
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	var n int64
	if _, err := fmt.Sscan(intPart, &n); err != nil {
		return formatted
	}
	return sign + FormatNumber(n) + "." + frac
}

// FormatLarge abbreviates values of a million or more ("~1.5 billion");
// smaller values get thousand separators.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}

// FormatMass renders a kilogram amount, switching to tonnes with one
// decimal at TonneDisplayThresholdKg. Display only; callers keep the raw value.
func FormatMass(kg float64) string {
	if kg >= TonneDisplayThresholdKg {
		return FormatFloat(kg/TonsToKg, 1) + " t"
	}
	return FormatNumber(int64(math.Round(kg))) + " kg"
}

// FormatLiters renders a litre amount as a whole number.
func FormatLiters(l float64) string {
	return FormatNumber(int64(math.Round(l))) + " L"
}
