// Package campus holds the read-only zone analysis shown in the policy
// perspective. It reports aggregate estimates only; nothing here is tied to
// an individual user.
package campus

import (
	"errors"

	"github.com/rshade/ecotrack/internal/state"
)

// ErrPolicyViewRequired is returned when the zone analysis is requested
// outside the policy perspective.
var ErrPolicyViewRequired = errors.New("zone analysis is only available in the policy perspective")

// EnergyLoad is a zone's relative energy draw.
type EnergyLoad string

const (
	EnergyLow    EnergyLoad = "Low"
	EnergyMedium EnergyLoad = "Med"
	EnergyHigh   EnergyLoad = "High"
	EnergyPeak   EnergyLoad = "Peak"
)

// WaterStress is a zone's water supply pressure.
type WaterStress string

const (
	WaterLow      WaterStress = "Low"
	WaterNormal   WaterStress = "Normal"
	WaterCritical WaterStress = "Critical"
)

// complianceTarget is the segregation percentage above which a zone is on track.
const complianceTarget = 90

// Zone is one area of the campus or municipality.
type Zone struct {
	Name        string      `json:"name"`
	Energy      EnergyLoad  `json:"energy"`
	WaterStress WaterStress `json:"water_stress"`
	// Compliance is the waste segregation rate in percent.
	Compliance int `json:"compliance"`
	Population int `json:"population"`
}

// OnTrack reports whether the zone's segregation beats the target.
func (z Zone) OnTrack() bool {
	return z.Compliance > complianceTarget
}

// Zones returns a copy of the reference zone estimates.
func Zones() []Zone {
	return []Zone{
		{Name: "Hostel A (North)", Energy: EnergyHigh, WaterStress: WaterCritical, Compliance: 88, Population: 450},
		{Name: "Hostel B (South)", Energy: EnergyMedium, WaterStress: WaterNormal, Compliance: 92, Population: 380},
		{Name: "Academic Block", Energy: EnergyPeak, WaterStress: WaterNormal, Compliance: 95, Population: 1200},
		{Name: "Society Park", Energy: EnergyLow, WaterStress: WaterLow, Compliance: 100, Population: 50},
	}
}

// Report is the policy dashboard: every zone plus the headline figures.
type Report struct {
	Zones             []Zone  `json:"zones"`
	EnergyHotspot     string  `json:"energy_hotspot"`
	AverageCompliance float64 `json:"average_compliance"`
	Population        int     `json:"population"`
}

// PolicyReport summarizes zones for c. Only the policy perspective may see it.
func PolicyReport(c state.Context, zones []Zone) (Report, error) {
	if !c.PolicyView() {
		return Report{}, ErrPolicyViewRequired
	}
	return Summarize(zones), nil
}

// Summarize computes the headline figures. The hotspot is the first zone
// with the highest energy load; an empty slice yields a zero report.
func Summarize(zones []Zone) Report {
	rep := Report{Zones: append([]Zone(nil), zones...)}
	if len(zones) == 0 {
		return rep
	}
	total := 0
	hot := zones[0]
	for _, z := range zones {
		total += z.Compliance
		rep.Population += z.Population
		if energyRank(z.Energy) > energyRank(hot.Energy) {
			hot = z
		}
	}
	rep.EnergyHotspot = hot.Name
	rep.AverageCompliance = float64(total) / float64(len(zones))
	return rep
}

func energyRank(e EnergyLoad) int {
	switch e {
	case EnergyLow:
		return 1
	case EnergyMedium:
		return 2 //nolint:mnd // Ordinal.
	case EnergyHigh:
		return 3 //nolint:mnd // Ordinal.
	case EnergyPeak:
		return 4 //nolint:mnd // Ordinal.
	default:
		return 0
	}
}
