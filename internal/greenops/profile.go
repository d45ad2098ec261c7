package greenops

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// MaxSegregationScore caps the waste segregation score.
const MaxSegregationScore = 100

// Transport holds daily travel distances in kilometres.
// BikeKm and WalkKm carry no emission factor and are kept for reporting only.
type Transport struct {
	CarKm  float64 `json:"car_km" yaml:"car_km"`
	BusKm  float64 `json:"bus_km" yaml:"bus_km"`
	BikeKm float64 `json:"bike_km" yaml:"bike_km"`
	WalkKm float64 `json:"walk_km" yaml:"walk_km"`
}

// Utilities holds monthly household energy usage.
type Utilities struct {
	ElectricityKWh float64 `json:"electricity_kwh" yaml:"electricity_kwh"`
	LPGKg          float64 `json:"lpg_kg" yaml:"lpg_kg"`
}

// Water holds daily household water activities.
type Water struct {
	ShowerMinutes    float64 `json:"shower_minutes" yaml:"shower_minutes"`
	Flushes          float64 `json:"flushes" yaml:"flushes"`
	DishwashingLoads float64 `json:"dishwashing_loads" yaml:"dishwashing_loads"`
	LaundryLoads     float64 `json:"laundry_loads" yaml:"laundry_loads"`
	CookingLiters    float64 `json:"cooking_liters" yaml:"cooking_liters"`
}

// Waste holds waste-reduction indicators.
type Waste struct {
	PlasticAvoided   float64 `json:"plastic_avoided" yaml:"plastic_avoided"`
	ReusablesUsed    float64 `json:"reusables_used" yaml:"reusables_used"`
	SegregationScore float64 `json:"segregation_score" yaml:"segregation_score"`
}

// Rooftop holds the solar estimator input.
type Rooftop struct {
	AreaM2     float64 `json:"area_m2" yaml:"area_m2"`
	HasChecked bool    `json:"has_checked" yaml:"has_checked"`
}

// ActivityProfile is the self-reported input every footprint is derived from.
// All numeric fields are non-negative; use Set or Clamp when assigning.
type ActivityProfile struct {
	Transport Transport `json:"transport" yaml:"transport"`
	Utilities Utilities `json:"utilities" yaml:"utilities"`
	Water     Water     `json:"water" yaml:"water"`
	Waste     Waste     `json:"waste" yaml:"waste"`
	Solar     Rooftop   `json:"solar" yaml:"solar"`
}

// Clamp returns v, or 0 when v is negative, NaN or infinite.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseQuantity parses user text into a clamped quantity.
// Anything that is not a number yields 0.
func ParseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Clamp(v)
}

// SplitQuantity separates a leading number from a trailing unit suffix:
// "10gal" gives ("10", "gal"). Plain numbers, exponents included, have no unit.
func SplitQuantity(s string) (number, unit string) {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s, ""
	}
	i := strings.IndexFunc(s, unicode.IsLetter)
	if i <= 0 {
		return s, ""
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i:])
}

// ParseFieldQuantity parses input for the field named key. A unit suffix is
// converted to the field's base unit ("2mi" for a distance, "500g" for LPG,
// "1gal" for cooking water). Unknown units, negative values and text that is
// not a number yield 0.
func ParseFieldQuantity(key, s string) float64 {
	number, unit := SplitQuantity(s)
	if unit == "" {
		return ParseQuantity(number)
	}
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}
	converted, err := f.kind.normalize(v, unit)
	if err != nil {
		return 0
	}
	return Clamp(converted)
}

// unitKind is the family of unit suffixes a field accepts.
type unitKind int

const (
	unitNone unitKind = iota
	unitDistance
	unitMass
	unitVolume
)

func (k unitKind) normalize(value float64, unit string) (float64, error) {
	switch k {
	case unitDistance:
		return NormalizeToKm(value, unit)
	case unitMass:
		return NormalizeToKg(value, unit)
	case unitVolume:
		return NormalizeToLiters(value, unit)
	default:
		return 0, ErrInvalidUnit
	}
}

// field addresses one numeric input of an ActivityProfile.
type field struct {
	ptr  func(p *ActivityProfile) *float64
	max  float64
	kind unitKind
}

//nolint:gochecknoglobals // Read-only lookup table.
var fields = map[string]field{
	"transport.car_km":          {ptr: func(p *ActivityProfile) *float64 { return &p.Transport.CarKm }, kind: unitDistance},
	"transport.bus_km":          {ptr: func(p *ActivityProfile) *float64 { return &p.Transport.BusKm }, kind: unitDistance},
	"transport.bike_km":         {ptr: func(p *ActivityProfile) *float64 { return &p.Transport.BikeKm }, kind: unitDistance},
	"transport.walk_km":         {ptr: func(p *ActivityProfile) *float64 { return &p.Transport.WalkKm }, kind: unitDistance},
	"utilities.electricity_kwh": {ptr: func(p *ActivityProfile) *float64 { return &p.Utilities.ElectricityKWh }},
	"utilities.lpg_kg":          {ptr: func(p *ActivityProfile) *float64 { return &p.Utilities.LPGKg }, kind: unitMass},
	"water.shower_minutes":      {ptr: func(p *ActivityProfile) *float64 { return &p.Water.ShowerMinutes }},
	"water.flushes":             {ptr: func(p *ActivityProfile) *float64 { return &p.Water.Flushes }},
	"water.dishwashing_loads":   {ptr: func(p *ActivityProfile) *float64 { return &p.Water.DishwashingLoads }},
	"water.laundry_loads":       {ptr: func(p *ActivityProfile) *float64 { return &p.Water.LaundryLoads }},
	"water.cooking_liters":      {ptr: func(p *ActivityProfile) *float64 { return &p.Water.CookingLiters }, kind: unitVolume},
	"waste.plastic_avoided":     {ptr: func(p *ActivityProfile) *float64 { return &p.Waste.PlasticAvoided }},
	"waste.reusables_used":      {ptr: func(p *ActivityProfile) *float64 { return &p.Waste.ReusablesUsed }},
	"waste.segregation_score": {
		ptr: func(p *ActivityProfile) *float64 { return &p.Waste.SegregationScore },
		max: MaxSegregationScore,
	},
	"solar.area_m2": {ptr: func(p *ActivityProfile) *float64 { return &p.Solar.AreaM2 }},
}

// FieldNames returns the dotted keys accepted by Set, sorted.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// IsField reports whether key names a numeric profile input.
func IsField(key string) bool {
	_, ok := fields[strings.ToLower(key)]
	return ok
}

// Set returns a copy of p with the field named key set to the clamped value.
// Unknown keys leave p unchanged and report false.
func (p ActivityProfile) Set(key string, value float64) (ActivityProfile, bool) {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return p, false
	}
	v := Clamp(value)
	if f.max > 0 && v > f.max {
		v = f.max
	}
	*f.ptr(&p) = v
	return p, true
}

// Get returns the value of the field named key.
func (p ActivityProfile) Get(key string) (float64, bool) {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return 0, false
	}
	return *f.ptr(&p), true
}

// Sanitized returns a copy of p with every numeric field clamped.
// Snapshots loaded from storage pass through here before use.
func (p ActivityProfile) Sanitized() ActivityProfile {
	for key := range fields {
		v, _ := p.Get(key)
		p, _ = p.Set(key, v)
	}
	return p
}
