// Package simulate projects the savings of a cohort adopting a set of habits
// over a number of days.
package simulate

import (
	"errors"
	"fmt"

	"github.com/rshade/ecotrack/internal/greenops"
)

// Validation errors.
var (
	ErrInvalidPopulation = errors.New("population must be at least 1")
	ErrInvalidDuration   = errors.New("duration must be at least 1 day")
)

// Config selects the cohort size, horizon and adopted habits.
type Config struct {
	Population  int  `json:"population"`
	Days        int  `json:"days"`
	Cycle       bool `json:"cycle"`
	ShortShower bool `json:"short_shower"`
	Solar       bool `json:"solar"`
	ACSetpoint  bool `json:"ac_setpoint"`
}

// DefaultConfig is a 100 person cohort over 30 days cycling, taking short
// showers and raising the AC setpoint.
func DefaultConfig() Config {
	return Config{
		Population:  100,
		Days:        30,
		Cycle:       true,
		ShortShower: true,
		ACSetpoint:  true,
	}
}

// Validate checks the cohort size and horizon.
func (c Config) Validate() error {
	if c.Population < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPopulation, c.Population)
	}
	if c.Days < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, c.Days)
	}
	return nil
}

// DailyCarbonKg is the per-person daily carbon saving of the selected habits.
func (c Config) DailyCarbonKg() float64 {
	var kg float64
	if c.Cycle {
		kg += greenops.SimCycleKg
	}
	if c.Solar {
		kg += greenops.SimSolarKg
	}
	if c.ACSetpoint {
		kg += greenops.SimACSetpointKg
	}
	return kg
}

// DailyWaterLiters is the per-person daily water saving.
func (c Config) DailyWaterLiters() float64 {
	if c.ShortShower {
		return greenops.SimShortShowerLiters
	}
	return 0
}

// Result holds cohort totals over the whole horizon.
type Result struct {
	Config      Config  `json:"config"`
	CarbonKg    float64 `json:"carbon_kg"`
	WaterLiters float64 `json:"water_liters"`
	TreeYears   float64 `json:"tree_years"`
}

// Run computes cohort totals. Totals are linear in population and days.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	scale := float64(cfg.Population) * float64(cfg.Days)
	carbon := cfg.DailyCarbonKg() * scale
	return Result{
		Config:      cfg,
		CarbonKg:    carbon,
		WaterLiters: cfg.DailyWaterLiters() * scale,
		TreeYears:   greenops.TreeYears(carbon),
	}, nil
}

// Carbon renders the carbon total.
func (r Result) Carbon() string { return FormatCarbon(r.CarbonKg) }

// Water renders the water total with thousands separators.
func (r Result) Water() string { return greenops.FormatLiters(r.WaterLiters) }

// Trees renders the tree-year equivalent with one decimal.
func (r Result) Trees() string { return greenops.FormatFloat(r.TreeYears, 1) }

// FormatCarbon renders kilograms as tonnes with one decimal from 1000 kg up,
// else as whole kilograms.
func FormatCarbon(kg float64) string {
	return greenops.FormatMass(kg)
}
