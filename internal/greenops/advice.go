package greenops

import "strings"

// RegionalTip is seasonal guidance for a region.
type RegionalTip struct {
	Region        string `json:"region"`
	CurrentSeason string `json:"current_season"`
	SeasonalTip   string `json:"seasonal_tip"`
	LocalAdvice   string `json:"local_advice"`
}

//nolint:gochecknoglobals // Read-only reference data.
var regionalTips = map[string]RegionalTip{
	"hyderabad": {
		Region:        "Hyderabad",
		CurrentSeason: "Summer",
		SeasonalTip:   "Heatwave expected. Run AC at 24°C to save 20% energy.",
		LocalAdvice:   "Rainwater harvesting pits are mandatory in plots > 300sq yards here.",
	},
}

// TipFor returns the guidance for region, matched case-insensitively.
func TipFor(region string) (RegionalTip, bool) {
	tip, ok := regionalTips[strings.ToLower(strings.TrimSpace(region))]
	return tip, ok
}

// Limitations lists what the footprint model does not account for.
func Limitations() []string {
	return []string{
		"Indirect emissions from the food you eat (Scope 3).",
		"The lifecycle carbon cost of manufacturing your devices.",
		"Public infrastructure (roads, streetlights) impact.",
		"Global supply chain shipping routes.",
	}
}
