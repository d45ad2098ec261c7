package campus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecotrack/internal/state"
)

func TestPolicyReport_Gate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctx     state.Context
		wantErr bool
	}{
		{"unset", state.Context{}, true},
		{"individual", state.Context{}.Set(state.WorkspaceResidential, state.ModeIndividual), true},
		{"campus", state.Context{}.Set(state.WorkspaceUniversity, state.ModeCampus), true},
		{"policy", state.Context{}.Set(state.WorkspaceMunicipal, state.ModePolicy), false},
		{"policy without workspace", state.Context{Mode: state.ModePolicy}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rep, err := PolicyReport(tt.ctx, Zones())
			if tt.wantErr {
				require.ErrorIs(t, err, ErrPolicyViewRequired)
				assert.Empty(t, rep.Zones)
				return
			}
			require.NoError(t, err)
			assert.Len(t, rep.Zones, 4)
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	rep := Summarize(Zones())
	assert.Equal(t, "Academic Block", rep.EnergyHotspot)
	assert.InDelta(t, 93.75, rep.AverageCompliance, 1e-9)
	assert.Equal(t, 2080, rep.Population)

	empty := Summarize(nil)
	assert.Empty(t, empty.EnergyHotspot)
	assert.Zero(t, empty.AverageCompliance)

	tie := Summarize([]Zone{
		{Name: "first", Energy: EnergyHigh},
		{Name: "second", Energy: EnergyHigh},
	})
	assert.Equal(t, "first", tie.EnergyHotspot)
}

func TestZones_IsCopy(t *testing.T) {
	t.Parallel()

	z := Zones()
	z[0].Name = "changed"
	assert.Equal(t, "Hostel A (North)", Zones()[0].Name)

	rep := Summarize(z)
	rep.Zones[1].Name = "changed too"
	assert.Equal(t, "Hostel B (South)", z[1].Name)
}

func TestZone_OnTrack(t *testing.T) {
	t.Parallel()

	on := 0
	for _, z := range Zones() {
		if z.OnTrack() {
			on++
		}
	}
	assert.Equal(t, 3, on)
	assert.False(t, Zone{Compliance: 90}.OnTrack())
}
