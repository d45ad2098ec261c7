// Package impactlog keeps the bounded, newest-first history of archived
// footprint snapshots and searches it.
package impactlog

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/ecotrack/internal/greenops"
)

// Capacity is the maximum number of entries kept; older ones are dropped.
const Capacity = 50

// Activity tags, one per profile input category.
const (
	TagCarTravel      = "Car Travel"
	TagBusTravel      = "Bus Travel"
	TagCycling        = "Cycling"
	TagWalking        = "Walking"
	TagElectricity    = "Electricity"
	TagCookingFuel    = "Cooking Fuel"
	TagBathing        = "Bathing"
	TagFlushing       = "Flushing"
	TagDishwashing    = "Dishwashing"
	TagLaundry        = "Laundry"
	TagCookingWater   = "Cooking Water"
	TagPlasticAvoided = "Plastic Avoided"
	TagReusables      = "Reusables"
)

// Tags lists the activity categories with a positive input in p.
func Tags(p greenops.ActivityProfile) []string {
	checks := []struct {
		value float64
		tag   string
	}{
		{p.Transport.CarKm, TagCarTravel},
		{p.Transport.BusKm, TagBusTravel},
		{p.Transport.BikeKm, TagCycling},
		{p.Transport.WalkKm, TagWalking},
		{p.Water.ShowerMinutes, TagBathing},
		{p.Utilities.ElectricityKWh, TagElectricity},
		{p.Utilities.LPGKg, TagCookingFuel},
		{p.Water.Flushes, TagFlushing},
		{p.Water.DishwashingLoads, TagDishwashing},
		{p.Water.LaundryLoads, TagLaundry},
		{p.Water.CookingLiters, TagCookingWater},
		{p.Waste.PlasticAvoided, TagPlasticAvoided},
		{p.Waste.ReusablesUsed, TagReusables},
	}
	tags := make([]string, 0, len(checks))
	for _, c := range checks {
		if c.value > 0 {
			tags = append(tags, c.tag)
		}
	}
	return tags
}

// Archive snapshots p at now, prepends it to logs and truncates to Capacity.
// logs is not modified; the new slice and the created entry are returned.
func Archive(logs []Entry, p greenops.ActivityProfile, now time.Time) ([]Entry, Entry) {
	entry := Entry{
		ID:          newID(now),
		Date:        now,
		CarbonKg:    greenops.DailyCarbonKg(p),
		WaterLiters: greenops.DailyWaterLiters(p),
		Activities:  Tags(p),
	}

	keep := min(len(logs), Capacity-1)
	out := make([]Entry, 0, keep+1)
	out = append(out, entry)
	for _, e := range logs[:keep] {
		out = append(out, e.clone())
	}
	return out, entry.clone()
}

// newID derives a time-ordered ID from now. Times a ULID cannot encode,
// such as the zero time or dates before 1970, get an ID from the current time.
func newID(now time.Time) ulid.ULID {
	id, err := ulid.New(ulid.Timestamp(now), ulid.DefaultEntropy())
	if err != nil {
		return ulid.Make()
	}
	return id
}

// Search returns the entries whose activity tags or date renderings contain
// term, ignoring case, in stored order. A blank term returns every entry.
func Search(logs []Entry, term string) []Entry {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]Entry, 0, len(logs))
	for _, e := range logs {
		if needle == "" || matches(e, needle) {
			out = append(out, e.clone())
		}
	}
	return out
}

func matches(e Entry, needle string) bool {
	for _, a := range e.Activities {
		if strings.Contains(strings.ToLower(a), needle) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(e.LongDate()), needle) ||
		strings.Contains(strings.ToLower(e.ShortDate()), needle)
}

// Summary is the lifetime total over all stored entries.
type Summary struct {
	Count       int     `json:"count"`
	CarbonKg    float64 `json:"carbon_kg"`
	WaterLiters float64 `json:"water_liters"`
}

// Summarize totals the stored entries.
func Summarize(logs []Entry) Summary {
	s := Summary{Count: len(logs)}
	for _, e := range logs {
		s.CarbonKg += e.CarbonKg
		s.WaterLiters += e.WaterLiters
	}
	return s
}

// Truncate drops entries beyond Capacity, e.g. from a hand-edited snapshot.
func Truncate(logs []Entry) []Entry {
	if len(logs) <= Capacity {
		return logs
	}
	return logs[:Capacity:Capacity]
}
