package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToKg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   float64
		unit    string
		wantKg  float64
		errType error
	}{
		{name: "grams", value: 1000, unit: "g", wantKg: 1},
		{name: "kilograms", value: 150, unit: "kg", wantKg: 150},
		{name: "tonnes", value: 1, unit: "t", wantKg: 1000},
		{name: "pounds", value: 100, unit: "lb", wantKg: 45.3592},
		{name: "suffix and case", value: 2, unit: "KgCO2e", wantKg: 2},
		{name: "unknown", value: 1, unit: "oz", errType: ErrInvalidUnit},
		{name: "negative", value: -1, unit: "kg", errType: ErrNegativeValue},
		{name: "nan", value: math.NaN(), unit: "kg", errType: ErrCalculationOverflow},
		{name: "overflow", value: math.MaxFloat64, unit: "t", errType: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.errType != nil {
				require.ErrorIs(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKg, got, 1e-6)
		})
	}
}

func TestNormalizeToLiters(t *testing.T) {
	t.Parallel()

	got, err := NormalizeToLiters(2, "m3")
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, got, 1e-9)

	got, err = NormalizeToLiters(1, "gal")
	require.NoError(t, err)
	assert.InDelta(t, 3.785, got, 1e-3)

	_, err = NormalizeToLiters(1, "kg")
	require.ErrorIs(t, err, ErrInvalidUnit)
}

func TestNormalizeToKm(t *testing.T) {
	t.Parallel()

	got, err := NormalizeToKm(2, "mi")
	require.NoError(t, err)
	assert.InDelta(t, 3.218688, got, 1e-9)

	got, err = NormalizeToKm(1500, "m")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-9)

	_, err = NormalizeToKm(-1, "km")
	require.ErrorIs(t, err, ErrNegativeValue)

	_, err = NormalizeToKm(1, "gal")
	require.ErrorIs(t, err, ErrInvalidUnit)
}

func TestIsRecognizedUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		unit string
		want bool
	}{
		{"transport.car_km", "mi", true},
		{"transport.car_km", "KM", true},
		{"transport.car_km", "gal", false},
		{"utilities.lpg_kg", "g", true},
		{"utilities.lpg_kg", "lb", true},
		{"water.cooking_liters", "gal", true},
		{"water.cooking_liters", "m3", true},
		{"water.cooking_liters", "kg", false},
		{"water.shower_minutes", "min", false},
		{"not.a.field", "kg", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRecognizedUnit(tt.key, tt.unit), "%s %s", tt.key, tt.unit)
	}
}
