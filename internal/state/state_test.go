package state

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecotrack/internal/impactlog"
	"github.com/rshade/ecotrack/internal/streak"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	d := Default()
	fp := d.Footprint()
	assert.InDelta(t, 2.29, fp.CarbonKg, 0.005)
	assert.InDelta(t, 86.0, fp.WaterLiters, 1e-9)
	assert.Equal(t, 90, d.Score())
	assert.Len(t, d.Streaks, 4)
	assert.Equal(t, DefaultRegion, d.Settings.Region)
	assert.False(t, d.Profile.IsLoggedIn)
}

func TestSetField(t *testing.T) {
	t.Parallel()

	d := Default()
	next, ok := SetField(d, "transport.car_km", 40)
	require.True(t, ok)
	assert.InDelta(t, 40.0, next.Activity.Transport.CarKm, 0)
	assert.InDelta(t, 5.0, d.Activity.Transport.CarKm, 0)

	next, ok = SetField(next, "transport.car_km", math.Inf(-1))
	require.True(t, ok)
	assert.InDelta(t, 0.0, next.Activity.Transport.CarKm, 0)

	same, ok := SetField(d, "nope", 1)
	assert.False(t, ok)
	assert.Equal(t, d, same)
}

func TestSetSolarArea(t *testing.T) {
	t.Parallel()

	d := SetSolarArea(Default(), 25)
	assert.InDelta(t, 25.0, d.Activity.Solar.AreaM2, 0)
	assert.True(t, d.Activity.Solar.HasChecked)

	d = SetSolarArea(d, -3)
	assert.InDelta(t, 0.0, d.Activity.Solar.AreaM2, 0)
}

func TestChallenges(t *testing.T) {
	t.Parallel()

	d := Default()
	d1 := AcceptChallenge(d, "meatless-monday")
	d2 := AcceptChallenge(d1, "meatless-monday")
	d3 := AcceptChallenge(d2, " ")
	assert.Equal(t, []string{"meatless-monday"}, d3.Challenges)
	assert.Empty(t, d.Challenges)
	assert.Equal(t, 95, d3.Score())

	d4 := DropChallenge(d3, "meatless-monday")
	assert.Empty(t, d4.Challenges)
	assert.Len(t, d3.Challenges, 1, "previous snapshot untouched")
	assert.Equal(t, d4, DropChallenge(d4, "missing"))
}

func TestLogHabit(t *testing.T) {
	t.Parallel()

	today := streak.Date{Year: 2026, Month: time.October, Day: 19}
	d := Default()
	next := LogHabit(d, streak.HabitCarFree, today)
	next = LogHabit(next, streak.HabitCarFree, today)

	assert.Equal(t, 1, next.Streaks[streak.HabitCarFree].Current)
	assert.Equal(t, 0, d.Streaks[streak.HabitCarFree].Current)

	var empty UserData
	assert.Equal(t, 1, LogHabit(empty, streak.HabitBikeCommute, today).Streaks[streak.HabitBikeCommute].Current)
}

func TestArchiveLog(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	d := Default()
	next, entry := ArchiveLog(d, now)
	require.Len(t, next.Logs, 1)
	assert.Equal(t, entry.ID, next.Logs[0].ID)
	assert.Empty(t, d.Logs)

	assert.Empty(t, ClearLogs(next).Logs)
}

func TestLoginAndSettings(t *testing.T) {
	t.Parallel()

	d := Login(Default(), "  riya ")
	assert.Equal(t, UserProfile{Username: "riya", IsLoggedIn: true}, d.Profile)

	d = ToggleLowPower(d)
	assert.True(t, d.Settings.LowPowerMode)
	d = SetRegion(d, "Pune")
	assert.Equal(t, "Pune", d.Settings.Region)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	raw := `{
		"activity": {"transport": {"car_km": -4, "bus_km": 2}},
		"streaks": {"carFree": {"current_streak": 3, "last_log_date": ""}},
		"logs": null
	}`
	var d UserData
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	n := Normalize(d)
	assert.InDelta(t, 0.0, n.Activity.Transport.CarKm, 0)
	assert.InDelta(t, 2.0, n.Activity.Transport.BusKm, 0)
	assert.Equal(t, 0, n.Streaks[streak.HabitCarFree].Current)
	assert.Len(t, n.Streaks, 4)
	assert.NotNil(t, n.Logs)
	assert.NotNil(t, n.Challenges)
	assert.Equal(t, DefaultRegion, n.Settings.Region)

	long := Default()
	long.Logs = make([]impactlog.Entry, impactlog.Capacity+5)
	assert.Len(t, Normalize(long).Logs, impactlog.Capacity)
}

func TestNormalize_DropsUntrackedHabits(t *testing.T) {
	t.Parallel()

	raw := `{"streaks": {
		"meditation": {"current_streak": 60, "last_log_date": "2026-10-19"},
		"bikeCommute": {"current_streak": 2, "last_log_date": "2026-10-19"}
	}}`
	var d UserData
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	n := Normalize(d)
	assert.Len(t, n.Streaks, len(streak.Habits()))
	assert.NotContains(t, n.Streaks, streak.Habit("meditation"))
	assert.Equal(t, 2, n.Streaks.TotalPoints())
	assert.Equal(t, "Observer", streak.Level(n.Streaks.TotalPoints()))
}

func TestUserData_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	d := LogHabit(Default(), streak.HabitShortShower, streak.DateOf(now))
	d, _ = ArchiveLog(d, now)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var back UserData
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d.Streaks, back.Streaks)
	require.Len(t, back.Logs, 1)
	assert.Equal(t, d.Logs[0].ID, back.Logs[0].ID)
	assert.True(t, d.Logs[0].Date.Equal(back.Logs[0].Date))
}
