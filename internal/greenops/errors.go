package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for unit normalization and equivalency math.
// Compare with errors.Is.
var (
	// ErrInvalidUnit indicates an unrecognized carbon or water unit.
	ErrInvalidUnit = constError("invalid unit")

	// ErrNegativeValue indicates a negative quantity where only non-negative values make sense.
	ErrNegativeValue = constError("negative value")

	// ErrCalculationOverflow indicates a NaN, Inf or overflowing result.
	ErrCalculationOverflow = constError("calculation overflow")
)
