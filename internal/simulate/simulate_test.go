package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DefaultCohort(t *testing.T) {
	t.Parallel()

	res, err := Run(DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 4320.0, res.CarbonKg, 1e-6)
	assert.InDelta(t, 135000.0, res.WaterLiters, 1e-6)
	assert.InDelta(t, 4320.0/21, res.TreeYears, 1e-6)
	assert.Equal(t, "4.3 t", res.Carbon())
	assert.Equal(t, "135,000 L", res.Water())
}

func TestRun_AllHabits(t *testing.T) {
	t.Parallel()

	cfg := Config{Population: 100, Days: 30, Cycle: true, ShortShower: true, Solar: true, ACSetpoint: true}
	res, err := Run(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 5310.0, res.CarbonKg, 1e-6)
	assert.Equal(t, "5.3 t", res.Carbon())
	assert.Equal(t, "252.9", res.Trees())
}

func TestRun_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero population", Config{Population: 0, Days: 1}, ErrInvalidPopulation},
		{"negative population", Config{Population: -5, Days: 1}, ErrInvalidPopulation},
		{"zero days", Config{Population: 1, Days: 0}, ErrInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Run(tt.cfg)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_NoHabits(t *testing.T) {
	t.Parallel()

	res, err := Run(Config{Population: 10, Days: 10})
	require.NoError(t, err)
	assert.Zero(t, res.CarbonKg)
	assert.Zero(t, res.WaterLiters)
	assert.Equal(t, "0 kg", res.Carbon())
}

func TestRun_Linear(t *testing.T) {
	t.Parallel()

	base := Config{Population: 3, Days: 7, Cycle: true, Solar: true, ShortShower: true}
	one, err := Run(base)
	require.NoError(t, err)

	doubled := base
	doubled.Population *= 2
	two, err := Run(doubled)
	require.NoError(t, err)
	assert.InDelta(t, 2*one.CarbonKg, two.CarbonKg, 1e-9)
	assert.InDelta(t, 2*one.WaterLiters, two.WaterLiters, 1e-9)

	longer := base
	longer.Days *= 3
	three, err := Run(longer)
	require.NoError(t, err)
	assert.InDelta(t, 3*one.CarbonKg, three.CarbonKg, 1e-9)
}

func TestFormatCarbon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kg   float64
		want string
	}{
		{0, "0 kg"},
		{999.4, "999 kg"},
		{1000, "1.0 t"},
		{5310, "5.3 t"},
		{12345678, "12,345.7 t"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCarbon(tt.kg))
	}
}
