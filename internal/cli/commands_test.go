package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecotrack/internal/campus"
	"github.com/rshade/ecotrack/internal/classify"
	"github.com/rshade/ecotrack/internal/cli"
	"github.com/rshade/ecotrack/internal/greenops"
	"github.com/rshade/ecotrack/internal/impactlog"
	"github.com/rshade/ecotrack/internal/leaderboard"
	"github.com/rshade/ecotrack/internal/simulate"
	"github.com/rshade/ecotrack/internal/state"
	"github.com/rshade/ecotrack/internal/store"
	"github.com/rshade/ecotrack/internal/streak"
)

func TestLoginAndProfile(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	out := env.mustRun("login", "Asha", "Rao")
	assert.Contains(t, out, "Welcome, Asha Rao.")

	var d state.UserData
	env.runJSON(&d, "profile")
	assert.Equal(t, "Asha Rao", d.Profile.Username)
	assert.True(t, d.Profile.IsLoggedIn)

	plain := env.mustRun("profile")
	assert.Contains(t, plain, "transport.car_km")
	assert.NotContains(t, plain, "\x1b[")
}

func TestSet(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	out := env.mustRun("set", "transport.car_km", "12")
	assert.Contains(t, out, "transport.car_km = 12")

	out = env.mustRun("set", "Water.Shower_Minutes", "-5")
	assert.Contains(t, out, "water.shower_minutes = 0", "negative input is clamped")

	out = env.mustRun("set", "utilities.electricity_kwh", "lots")
	assert.Contains(t, out, "= 0", "non-numeric input becomes 0")

	out = env.mustRun("set", "transport.bus_km", "-3")
	assert.Contains(t, out, "transport.bus_km = 0", "a negative value is not read as a flag")

	out = env.mustRun("set", "water.cooking_liters", "2gal")
	assert.Contains(t, out, "water.cooking_liters = 7.57")

	out = env.mustRun("set", "utilities.lpg_kg", "2gal")
	assert.Contains(t, out, "utilities.lpg_kg = 0", "a unit of the wrong family stores 0")

	var d state.UserData
	env.runJSON(&d, "profile")
	assert.InDelta(t, 12, d.Activity.Transport.CarKm, 1e-9)
	assert.Zero(t, d.Activity.Water.ShowerMinutes)

	_, err := env.run("set", "transport.rocket_km", "1")
	require.ErrorIs(t, err, cli.ErrUnknownField)
}

func TestFootprint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var rep struct {
		Range string             `json:"range"`
		Daily greenops.Footprint `json:"daily"`
		Total greenops.Footprint `json:"total"`
	}
	env.runJSON(&rep, "footprint", "--range", "weekly")

	daily := state.Default().Footprint()
	assert.Equal(t, "weekly", rep.Range)
	assert.InDelta(t, daily.CarbonKg, rep.Daily.CarbonKg, 1e-9)
	assert.InDelta(t, 7*daily.CarbonKg, rep.Total.CarbonKg, 1e-9)
	assert.Equal(t, daily.CarbonStress, rep.Total.CarbonStress, "stress stays tied to the daily figure")

	_, err := env.run("footprint", "--range", "yearly")
	require.Error(t, err)

	_, err = env.run("footprint", "--output", "xml")
	require.Error(t, err)
}

func TestReceipt(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var rep struct {
		Date   string `json:"date"`
		Region string `json:"region"`
		greenops.Receipt
	}
	env.runJSON(&rep, "receipt")

	daily := state.Default().Footprint()
	want := greenops.ReceiptFor(daily.CarbonKg, daily.WaterLiters)
	assert.Equal(t, "October 19, 2026", rep.Date)
	assert.Equal(t, state.DefaultRegion, rep.Region)
	assert.InDelta(t, want.CarbonKg, rep.CarbonKg, 1e-9)
	assert.InDelta(t, want.TreesPerDay, rep.TreesPerDay, 1e-9)
	assert.InDelta(t, want.WaterSavedLiters, rep.WaterSavedLiters, 1e-9)

	out := env.mustRun("receipt")
	assert.Contains(t, out, "PLANET RECEIPT")
	assert.Contains(t, out, "LOCAL REGION: HYDERABAD")
}

func TestScoreReflectsChallenges(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var before, after struct {
		Score      int `json:"score"`
		Challenges int `json:"challenges"`
	}
	env.runJSON(&before, "score")
	assert.Equal(t, state.Default().Score(), before.Score)

	env.mustRun("challenge", "accept", "car-free")
	env.runJSON(&after, "score")
	assert.Equal(t, 1, after.Challenges)
	assert.Equal(t, min(before.Score+greenops.ScorePerChallenge, greenops.ScoreMax), after.Score)
}

func TestSolar(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var rep struct {
		AreaM2     float64        `json:"area_m2"`
		Projection greenops.Solar `json:"projection"`
	}
	env.runJSON(&rep, "solar", "--area", "20")
	assert.InDelta(t, 20, rep.AreaM2, 1e-9)
	assert.InDelta(t, 3.0, rep.Projection.CapacityKW, 1e-9)
	assert.InDelta(t, 360, rep.Projection.MonthlyGeneration, 1e-9)

	var d state.UserData
	env.runJSON(&d, "profile")
	assert.True(t, d.Activity.Solar.HasChecked)

	env.runJSON(&rep, "solar")
	assert.InDelta(t, 20, rep.AreaM2, 1e-9, "area is remembered")
}

func TestStreak(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	assert.Contains(t, env.mustRun("streak", "log", "bikeCommute"), "1 day streak")
	assert.Contains(t, env.mustRun("streak", "log", "bike_commute"), "1 day streak", "same day is a no-op")

	env.now = env.now.AddDate(0, 0, 1)
	assert.Contains(t, env.mustRun("streak", "log", "bikeCommute"), "2 day streak")

	env.now = env.now.AddDate(0, 0, 2)
	var rep struct {
		Habits []struct {
			Habit     streak.Habit `json:"habit"`
			Displayed int          `json:"displayed_streak"`
			Stored    int          `json:"stored_streak"`
			State     streak.State `json:"state"`
		} `json:"habits"`
		Points int `json:"points"`
	}
	env.runJSON(&rep, "streak", "show")
	require.Len(t, rep.Habits, len(streak.Habits()))
	bike := rep.Habits[0]
	assert.Equal(t, streak.HabitBikeCommute, bike.Habit)
	assert.Equal(t, 0, bike.Displayed, "a missed day shows as broken")
	assert.Equal(t, 2, bike.Stored, "the stored counter is kept until the next log")
	assert.Equal(t, streak.StateStale, bike.State)

	assert.Contains(t, env.mustRun("streak", "log", "bikeCommute"), "1 day streak")

	_, err := env.run("streak", "log", "jetpack")
	require.Error(t, err)
}

func TestLogArchiveSearchSummary(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var empty []impactlog.Entry
	env.runJSON(&empty, "log", "search")
	assert.Empty(t, empty)

	assert.Contains(t, env.mustRun("log", "archive"), "October 19, 2026")
	env.mustRun("set", "transport.car_km", "0")
	env.mustRun("set", "transport.bike_km", "4")
	env.now = env.now.AddDate(0, 0, 1)
	env.mustRun("log", "archive")

	var all []impactlog.Entry
	env.runJSON(&all, "log", "search")
	require.Len(t, all, 2)
	assert.Equal(t, 20, all[0].Date.Day(), "newest first")

	var cycling []impactlog.Entry
	env.runJSON(&cycling, "log", "search", "cycl")
	require.Len(t, cycling, 1)
	assert.Contains(t, cycling[0].Activities, impactlog.TagCycling)

	var byDate []impactlog.Entry
	env.runJSON(&byDate, "log", "search", "19", "oct")
	require.Len(t, byDate, 1)

	var summary impactlog.Summary
	env.runJSON(&summary, "log", "summary")
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, all[0].CarbonKg+all[1].CarbonKg, summary.CarbonKg, 1e-9)

	_, err := env.runWithInput("n\n", "log", "clear")
	require.ErrorIs(t, err, cli.ErrResetNotConfirmed)
	env.mustRun("log", "clear", "--yes")
	env.runJSON(&all, "log", "search")
	assert.Empty(t, all)
}

func TestLeaderboard(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var rep struct {
		UserRank int                 `json:"user_rank"`
		Ranking  leaderboard.Ranking `json:"ranking"`
		Spots    []leaderboard.Spot  `json:"spots"`
	}
	env.runJSON(&rep, "leaderboard", "--top", "3", "--spots")

	want := leaderboard.Rank(leaderboard.Roster(), state.Default().Score())
	assert.Equal(t, want.UserRank(), rep.UserRank)
	assert.Equal(t, want.Top(3), rep.Ranking)
	assert.Len(t, rep.Spots, len(leaderboard.CommunitySpots()))

	plain := env.mustRun("leaderboard")
	assert.Contains(t, plain, "EcoWarrior_99")
	assert.Contains(t, plain, "You are #")
}

func TestSimulate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var res simulate.Result
	env.runJSON(&res, "simulate")
	assert.InDelta(t, 4320, res.CarbonKg, 1e-6)
	assert.InDelta(t, 135000, res.WaterLiters, 1e-6)

	env.runJSON(&res, "simulate", "--cycle")
	assert.InDelta(t, greenops.SimCycleKg*100*30, res.CarbonKg, 1e-6, "a habit flag selects only the named habits")
	assert.Zero(t, res.WaterLiters)

	out := env.mustRun("simulate", "--people", "100", "--days", "30", "--cycle", "--shower", "--solar", "--ac")
	assert.Contains(t, out, "5.3 t")

	_, err := env.run("simulate", "--people", "0")
	require.ErrorIs(t, err, simulate.ErrInvalidPopulation)
}

type stubClassifier struct {
	res classify.Result
	err error
}

func (s stubClassifier) Classify(context.Context, string) (classify.Result, error) {
	return s.res, s.err
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("guide item", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		var res classify.Result
		env.runJSON(&res, "classify", "battery")
		assert.Equal(t, classify.CategoryEWaste, res.Category)
		assert.Equal(t, classify.SourceGuide, res.Source)
	})

	t.Run("offline", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		_, err := env.run("classify", "pizza", "box")
		var notice *classify.Notice
		require.ErrorAs(t, err, &notice)
		assert.Equal(t, classify.OfflineMessage, notice.Message)
	})

	t.Run("remote then cached", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.classifier = stubClassifier{res: classify.Result{
			Item:   classify.Item{Name: "Pizza Box", Category: classify.CategoryDry, Guide: "Tear off greasy parts."},
			Source: classify.SourceRemote,
		}}

		var res classify.Result
		env.runJSON(&res, "classify", "pizza", "box")
		assert.Equal(t, classify.SourceRemote, res.Source)

		env.classifier = stubClassifier{err: errors.New("down")}
		env.runJSON(&res, "classify", "Pizza Box")
		assert.Equal(t, classify.SourceCache, res.Source)
		assert.Equal(t, classify.CategoryDry, res.Category)
	})
}

func TestGuide(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var items []classify.Item
	env.runJSON(&items, "guide", "can")
	require.Len(t, items, 1)
	assert.Equal(t, "Aluminum Can", items[0].Name)

	env.runJSON(&items, "guide")
	assert.Len(t, items, len(classify.Guide()))
}

func TestCacheClean(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	out := env.mustRun("cache", "clean")
	assert.Contains(t, out, "Removed 0 expired entries")
}

func TestChallenge(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.mustRun("challenge", "accept", "carFree")
	env.mustRun("challenge", "accept", "CARFREE")
	env.mustRun("challenge", "accept", "plastic-free")

	var ids []string
	env.runJSON(&ids, "challenge", "list")
	assert.Equal(t, []string{"carFree", "plasticFree"}, ids)

	env.mustRun("challenge", "drop", "carFree")
	env.runJSON(&ids, "challenge", "list")
	assert.Equal(t, []string{"plasticFree"}, ids)

	_, err := env.run("challenge", "accept", "moon-walk")
	require.Error(t, err)
}

func TestWorkspace(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	var rep struct {
		Workspace  state.Workspace `json:"workspace"`
		Mode       state.Mode      `json:"mode"`
		Complete   bool            `json:"complete"`
		PolicyView bool            `json:"policy_view"`
	}
	env.runJSON(&rep, "workspace", "show")
	assert.False(t, rep.Complete)

	env.mustRun("workspace", "set", "municipal", "policy")
	env.runJSON(&rep, "workspace", "show")
	assert.Equal(t, state.WorkspaceMunicipal, rep.Workspace)
	assert.Equal(t, state.ModePolicy, rep.Mode)
	assert.True(t, rep.PolicyView)

	raw, ok, err := env.store.Get(context.Background(), store.KeyWorkspace)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Municipal", string(raw))

	env.mustRun("workspace", "reset")
	env.runJSON(&rep, "workspace", "show")
	assert.Empty(t, rep.Workspace)

	_, err = env.run("workspace", "set", "moon", "campus")
	require.Error(t, err)
}

func TestZones(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		name      string
		workspace []string
		wantErr   bool
	}{
		{"unset", nil, true},
		{"campus mode", []string{"university", "campus"}, true},
		{"individual mode", []string{"residential", "individual"}, true},
		{"policy mode", []string{"municipal", "policy"}, false},
	}
	for _, tt := range tests {
		if tt.workspace != nil {
			env.mustRun(append([]string{"workspace", "set"}, tt.workspace...)...)
		}
		_, err := env.run("zones")
		if tt.wantErr {
			require.ErrorIs(t, err, campus.ErrPolicyViewRequired, tt.name)
			assert.Contains(t, err.Error(), "workspace set", tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
	}

	var rep campus.Report
	env.runJSON(&rep, "zones")
	assert.Len(t, rep.Zones, 4)
	assert.Equal(t, "Academic Block", rep.EnergyHotspot)
	assert.InDelta(t, 93.75, rep.AverageCompliance, 1e-9)

	out := env.mustRun("zones")
	assert.Contains(t, out, "CAMPUS POLICY GUIDANCE")
	assert.Contains(t, out, "Hostel A (North)")
}

func TestSettingsAndTips(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	assert.Contains(t, env.mustRun("settings", "low-power"), "on")
	assert.Contains(t, env.mustRun("settings", "low-power"), "off")

	out := env.mustRun("tips")
	tip, ok := greenops.TipFor(state.DefaultRegion)
	require.True(t, ok)
	assert.Contains(t, out, tip.SeasonalTip)

	out = env.mustRun("settings", "region", "Oslo")
	assert.Contains(t, out, "No seasonal tips")
	assert.NotContains(t, env.mustRun("tips"), tip.SeasonalTip)
}

func TestReset(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.mustRun("login", "asha")
	env.mustRun("workspace", "set", "University", "Campus")

	_, err := env.runWithInput("no\n", "reset")
	require.ErrorIs(t, err, cli.ErrResetNotConfirmed)

	_, err = env.runWithInput("yes\n", "reset")
	require.NoError(t, err)

	var d state.UserData
	env.runJSON(&d, "profile")
	assert.Empty(t, d.Profile.Username)

	_, ok, err := env.store.Get(context.Background(), store.KeyWorkspace)
	require.NoError(t, err)
	assert.False(t, ok)

	env.mustRun("reset", "--yes")
}

func TestFileBackendFromConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  backend: file\nlogging:\n  level: error\n"), 0o600))

	run := func(args ...string) string {
		t.Helper()
		root := cli.NewRootCmdWithOptions("1.2.3", cli.Options{LookupEnv: func(string) (string, bool) { return "", false }})
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append([]string{"--config", cfgPath, "--store-dir", dataDir}, args...))
		require.NoError(t, root.Execute())
		return out.String()
	}

	run("login", "persisted")

	var d state.UserData
	require.NoError(t, json.Unmarshal([]byte(run("profile", "--output", "json")), &d))
	assert.Equal(t, "persisted", d.Profile.Username)
	assert.FileExists(t, filepath.Join(dataDir, store.KeyUserData+".json"))
}
