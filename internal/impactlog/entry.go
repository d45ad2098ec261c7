package impactlog

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry is one archived snapshot of the daily footprint. Entries are never
// modified after Archive creates them.
type Entry struct {
	ID          ulid.ULID `json:"id"`
	Date        time.Time `json:"date"`
	CarbonKg    float64   `json:"carbon_kg"`
	WaterLiters float64   `json:"water_liters"`
	Activities  []string  `json:"activities"`
}

// Date renderings searched by Search.
const (
	LongDateLayout  = "January 2, 2006"
	ShortDateLayout = "02 Jan"
)

// LongDate renders the entry date as "October 19, 2026".
func (e Entry) LongDate() string {
	return e.Date.Format(LongDateLayout)
}

// ShortDate renders the entry date as "19 Oct".
func (e Entry) ShortDate() string {
	return e.Date.Format(ShortDateLayout)
}

func (e Entry) clone() Entry {
	e.Activities = append([]string(nil), e.Activities...)
	return e
}
