package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "18,248", FormatNumber(18248))
	assert.Equal(t, "-1,000", FormatNumber(-1000))
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,234.57", FormatFloat(1234.567, 2))
	assert.Equal(t, "5.3", FormatFloat(5.31, 1))
	assert.Equal(t, "-2,000.5", FormatFloat(-2000.5, 1))
	assert.Equal(t, "12", FormatFloat(12.4, 0))
}

func TestFormatMass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5.3 t", FormatMass(5310))
	assert.Equal(t, "1.0 t", FormatMass(1000))
	assert.Equal(t, "999 kg", FormatMass(999.4))
	assert.Equal(t, "0 kg", FormatMass(0))
}

func TestFormatLarge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~1.5 billion", FormatLarge(1_500_000_000))
	assert.Equal(t, "~2.0 million", FormatLarge(2_000_000))
	assert.Equal(t, "999,999", FormatLarge(999_999))
}

func TestFormatLiters(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "135,000 L", FormatLiters(135000))
}
