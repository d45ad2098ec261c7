package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipFor(t *testing.T) {
	t.Parallel()

	tip, ok := TipFor(" HYDERABAD ")
	require.True(t, ok)
	assert.Equal(t, "Summer", tip.CurrentSeason)

	_, ok = TipFor("Atlantis")
	assert.False(t, ok)
}

func TestLimitations(t *testing.T) {
	t.Parallel()

	l := Limitations()
	assert.Len(t, l, 4)
	l[0] = "changed"
	assert.NotEqual(t, "changed", Limitations()[0])
}
