package impactlog

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecotrack/internal/greenops"
)

func profile() greenops.ActivityProfile {
	return greenops.ActivityProfile{
		Transport: greenops.Transport{CarKm: 5, BusKm: 5},
		Utilities: greenops.Utilities{ElectricityKWh: 10, LPGKg: 10},
		Water:     greenops.Water{ShowerMinutes: 5, Flushes: 4, DishwashingLoads: 1, CookingLiters: 5},
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		TagCarTravel, TagBusTravel, TagBathing, TagElectricity, TagCookingFuel,
		TagFlushing, TagDishwashing, TagCookingWater,
	}, Tags(profile()))
	assert.Empty(t, Tags(greenops.ActivityProfile{}))
	assert.Equal(t, []string{TagCycling}, Tags(greenops.ActivityProfile{Transport: greenops.Transport{BikeKm: 3}}))
}

func TestArchive_Snapshot(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	logs, entry := Archive(nil, profile(), now)

	require.Len(t, logs, 1)
	assert.Equal(t, entry.ID, logs[0].ID)
	assert.InDelta(t, 2.29, entry.CarbonKg, 0.005)
	assert.InDelta(t, 86.0, entry.WaterLiters, 1e-9)
	assert.Equal(t, now, entry.Date)
	assert.Equal(t, ulidTime(now), entry.ID.Time())
}

func TestArchive_UnencodableTimeGetsID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
	}{
		{"zero time", time.Time{}},
		{"before epoch", time.Date(1969, time.July, 20, 20, 17, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var (
				logs  []Entry
				entry Entry
			)
			require.NotPanics(t, func() { logs, entry = Archive(nil, profile(), tt.now) })
			require.Len(t, logs, 1)
			assert.NotEqual(t, ulid.ULID{}, entry.ID)
			assert.Equal(t, tt.now, entry.Date)
		})
	}
}

func ulidTime(t time.Time) uint64 {
	return uint64(t.UnixMilli())
}

func TestArchive_NewestFirstAndBounded(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC)
	var logs []Entry
	var first, last Entry
	for i := range Capacity + 1 {
		var e Entry
		logs, e = Archive(logs, profile(), start.Add(time.Duration(i)*time.Hour))
		if i == 0 {
			first = e
		}
		last = e
	}

	require.Len(t, logs, Capacity)
	assert.Equal(t, last.ID, logs[0].ID, "newest entry first")
	for _, e := range logs {
		assert.NotEqual(t, first.ID, e.ID, "oldest entry evicted")
	}
	for i := 1; i < len(logs); i++ {
		assert.True(t, logs[i-1].Date.After(logs[i].Date))
	}
}

func TestArchive_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	logs, _ := Archive(nil, profile(), now)
	before := logs[0]

	next, _ := Archive(logs, greenops.ActivityProfile{}, now.Add(time.Minute))
	next[1].Activities[0] = "tampered"

	assert.Equal(t, before.Activities, logs[0].Activities)
	assert.Len(t, logs, 1)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	oct := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

	var logs []Entry
	logs, _ = Archive(logs, greenops.ActivityProfile{Transport: greenops.Transport{CarKm: 3}}, mar)
	logs, _ = Archive(logs, greenops.ActivityProfile{Water: greenops.Water{ShowerMinutes: 8}}, oct)

	tests := []struct {
		name string
		term string
		want []time.Time
	}{
		{name: "blank returns all newest first", term: "  ", want: []time.Time{oct, mar}},
		{name: "tag case-insensitive", term: "CAR", want: []time.Time{mar}},
		{name: "tag substring", term: "bath", want: []time.Time{oct}},
		{name: "long date month", term: "october", want: []time.Time{oct}},
		{name: "long date year", term: "2026", want: []time.Time{oct, mar}},
		{name: "short date", term: "05 mar", want: []time.Time{mar}},
		{name: "short month", term: "Oct", want: []time.Time{oct}},
		{name: "no match", term: "laundry", want: []time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Search(logs, tt.term)
			dates := make([]time.Time, 0, len(got))
			for _, e := range got {
				dates = append(dates, e.Date)
			}
			assert.Equal(t, tt.want, dates)
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	logs, _ := Archive(nil, profile(), now)
	logs, _ = Archive(logs, profile(), now.Add(time.Hour))

	s := Summarize(logs)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 172.0, s.WaterLiters, 1e-9)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	logs := make([]Entry, Capacity+7)
	assert.Len(t, Truncate(logs), Capacity)
	assert.Len(t, Truncate(logs[:3]), 3)
}
