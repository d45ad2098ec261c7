// Package state holds the two explicitly owned state objects of ecotrack:
// the UserData root aggregate and the workspace Context. Every mutator is a
// pure transition that takes the current value and returns the next one.
package state

import (
	"slices"
	"strings"
	"time"

	"github.com/rshade/ecotrack/internal/greenops"
	"github.com/rshade/ecotrack/internal/impactlog"
	"github.com/rshade/ecotrack/internal/streak"
)

// DefaultRegion is the region new profiles start in.
const DefaultRegion = "Hyderabad"

// UserProfile is the local identity of the single user.
type UserProfile struct {
	Username   string `json:"username"`
	IsLoggedIn bool   `json:"is_logged_in"`
}

// Settings are user preferences that do not affect calculations.
type Settings struct {
	LowPowerMode bool   `json:"low_power_mode"`
	Region       string `json:"region"`
}

// UserData is the root aggregate: the activity profile plus everything owned by it.
type UserData struct {
	Profile    UserProfile              `json:"user_profile"`
	Activity   greenops.ActivityProfile `json:"activity"`
	Challenges []string                 `json:"challenges"`
	Streaks    streak.Book              `json:"streaks"`
	Logs       []impactlog.Entry        `json:"logs"`
	Settings   Settings                 `json:"settings"`
}

// Default returns the aggregate a new user starts with.
func Default() UserData {
	return UserData{
		Activity: greenops.ActivityProfile{
			Transport: greenops.Transport{CarKm: 5, BusKm: 5},
			Utilities: greenops.Utilities{ElectricityKWh: 10, LPGKg: 10},
			Water: greenops.Water{
				ShowerMinutes:    5,
				Flushes:          4,
				DishwashingLoads: 1,
				CookingLiters:    5,
			},
		},
		Challenges: []string{},
		Streaks:    streak.NewBook(),
		Logs:       []impactlog.Entry{},
		Settings:   Settings{Region: DefaultRegion},
	}
}

// Normalize repairs a decoded aggregate: clamps inputs, fills missing habits,
// drops untracked ones, enforces streak invariants and bounds the log.
func Normalize(d UserData) UserData {
	d = d.clone()
	d.Activity = d.Activity.Sanitized()
	if d.Challenges == nil {
		d.Challenges = []string{}
	}
	book := streak.NewBook()
	for h := range book {
		if s, ok := d.Streaks[h]; ok {
			book[h] = streak.Normalize(s)
		}
	}
	d.Streaks = book
	if d.Logs == nil {
		d.Logs = []impactlog.Entry{}
	}
	d.Logs = impactlog.Truncate(d.Logs)
	if d.Settings.Region == "" {
		d.Settings.Region = DefaultRegion
	}
	return d
}

// clone copies every slice and map so transitions never share storage with
// the previous snapshot.
func (d UserData) clone() UserData {
	d.Challenges = slices.Clone(d.Challenges)
	if d.Streaks != nil {
		d.Streaks = d.Streaks.Clone()
	}
	d.Logs = slices.Clone(d.Logs)
	return d
}

// Footprint assesses the current activity profile.
func (d UserData) Footprint() greenops.Footprint {
	return greenops.Assess(d.Activity, len(d.Challenges))
}

// Score is the eco score of the current profile and challenge count.
func (d UserData) Score() int {
	return greenops.ProfileScore(d.Activity, len(d.Challenges))
}

// SetField sets one activity input by dotted key; the value is clamped.
// Unknown keys return d unchanged and false.
func SetField(d UserData, key string, value float64) (UserData, bool) {
	next, ok := d.Activity.Set(key, value)
	if !ok {
		return d, false
	}
	d = d.clone()
	d.Activity = next
	return d, true
}

// SetSolarArea records a rooftop area and marks the estimator as used.
func SetSolarArea(d UserData, areaM2 float64) UserData {
	d = d.clone()
	d.Activity, _ = d.Activity.Set("solar.area_m2", areaM2)
	d.Activity.Solar.HasChecked = true
	return d
}

// Login marks the user as logged in under name.
func Login(d UserData, name string) UserData {
	d = d.clone()
	d.Profile = UserProfile{Username: strings.TrimSpace(name), IsLoggedIn: true}
	return d
}

// ToggleLowPower flips the low-power preference.
func ToggleLowPower(d UserData) UserData {
	d = d.clone()
	d.Settings.LowPowerMode = !d.Settings.LowPowerMode
	return d
}

// SetRegion changes the region used for regional tips.
func SetRegion(d UserData, region string) UserData {
	d = d.clone()
	d.Settings.Region = strings.TrimSpace(region)
	return d
}

// AcceptChallenge adds a challenge id once; repeats are ignored.
func AcceptChallenge(d UserData, id string) UserData {
	id = strings.TrimSpace(id)
	if id == "" || slices.Contains(d.Challenges, id) {
		return d
	}
	d = d.clone()
	d.Challenges = append(d.Challenges, id)
	return d
}

// DropChallenge removes a challenge id if present.
func DropChallenge(d UserData, id string) UserData {
	idx := slices.Index(d.Challenges, strings.TrimSpace(id))
	if idx < 0 {
		return d
	}
	d = d.clone()
	d.Challenges = slices.Delete(d.Challenges, idx, idx+1)
	return d
}

// LogHabit advances the streak of habit for today.
func LogHabit(d UserData, habit streak.Habit, today streak.Date) UserData {
	d = d.clone()
	if d.Streaks == nil {
		d.Streaks = streak.NewBook()
	}
	d.Streaks = d.Streaks.Log(habit, today)
	return d
}

// ArchiveLog snapshots the current footprint into the impact log.
func ArchiveLog(d UserData, now time.Time) (UserData, impactlog.Entry) {
	d = d.clone()
	var entry impactlog.Entry
	d.Logs, entry = impactlog.Archive(d.Logs, d.Activity, now)
	return d, entry
}

// ClearLogs empties the impact log.
func ClearLogs(d UserData) UserData {
	d = d.clone()
	d.Logs = []impactlog.Entry{}
	return d
}
