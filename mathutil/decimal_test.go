package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlusSubtract(t *testing.T) {
	require := require.New(t)

	v, err := Plus(0.1, 0.2)
	require.NoError(err)
	require.Equal(0.3, v)

	v, err = Plus()
	require.NoError(err)
	require.Equal(0.0, v)

	v, err = Subtract(1.0, 0.9)
	require.NoError(err)
	require.Equal(0.1, v)

	_, err = Plus(1, math.NaN())
	require.ErrorIs(err, ErrNotFinite)
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		description string
		scale       int32
		mode        RoundingMode
		values      []float64
		expected    float64
	}{
		{description: "scale factor", scale: 6, mode: HalfUp, values: []float64{12345, 0.01}, expected: 123.45},
		{description: "half up", scale: 2, mode: HalfUp, values: []float64{1.005, 1}, expected: 1.01},
		{description: "half up negative", scale: 0, mode: HalfUp, values: []float64{-2.5}, expected: -3},
		{description: "down", scale: 1, mode: Down, values: []float64{-1.99}, expected: -1.9},
		{description: "up", scale: 1, mode: Up, values: []float64{1.01}, expected: 1.1},
		{description: "ceiling", scale: 0, mode: Ceiling, values: []float64{-1.5}, expected: -1},
		{description: "floor", scale: 0, mode: Floor, values: []float64{-1.5}, expected: -2},
		{description: "no values", scale: 2, mode: HalfUp, values: nil, expected: 1},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		v, err := Multiply(test.scale, test.mode, test.values...)
		require.NoError(err)
		require.Equal(test.expected, v)
	}
}

func TestDivide(t *testing.T) {
	require := require.New(t)

	v, err := Divide(123.45, 0.01, 6, HalfUp)
	require.NoError(err)
	require.Equal(12345.0, v)

	v, err = Divide(1, 3, 4, HalfUp)
	require.NoError(err)
	require.Equal(0.3333, v)

	v, err = Divide(2, 3, 2, Down)
	require.NoError(err)
	require.Equal(0.66, v)

	v, err = Divide(-2, 3, 2, Floor)
	require.NoError(err)
	require.Equal(-0.67, v)

	_, err = Divide(1, 0, 2, HalfUp)
	require.ErrorIs(err, ErrDivisionByZero)

	_, err = Divide(math.Inf(1), 2, 2, HalfUp)
	require.ErrorIs(err, ErrNotFinite)
}

func TestDivideRoundsOnce(t *testing.T) {
	tests := []struct {
		description string
		dividend    float64
		divisor     float64
		scale       int32
		mode        RoundingMode
		expected    float64
	}{
		{description: "ceiling of a tiny positive quotient", dividend: 1e-20, divisor: 1, scale: 0, mode: Ceiling, expected: 1},
		{description: "up of a tiny positive quotient", dividend: 1e-20, divisor: 1, scale: 0, mode: Up, expected: 1},
		{description: "up of a tiny negative quotient", dividend: -1e-20, divisor: 1, scale: 0, mode: Up, expected: -1},
		{description: "floor of a tiny negative quotient", dividend: 1e-20, divisor: -1, scale: 0, mode: Floor, expected: -1},
		{description: "down of a tiny quotient", dividend: 1e-20, divisor: 1, scale: 0, mode: Down, expected: 0},
		{description: "ceiling of a negative quotient truncates", dividend: -2, divisor: 3, scale: 2, mode: Ceiling, expected: -0.66},
		{description: "floor of a positive quotient truncates", dividend: 2, divisor: 3, scale: 2, mode: Floor, expected: 0.66},
		{description: "exact quotient is kept", dividend: 1, divisor: 4, scale: 2, mode: Up, expected: 0.25},
		{description: "half up tie", dividend: 1, divisor: 8, scale: 2, mode: HalfUp, expected: 0.13},
		{description: "half up negative tie", dividend: -1, divisor: 8, scale: 2, mode: HalfUp, expected: -0.13},
		{description: "half up below tie", dividend: 1, divisor: 3, scale: 0, mode: HalfUp, expected: 0},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		v, err := Divide(test.dividend, test.divisor, test.scale, test.mode)
		require.NoError(err)
		require.Equal(test.expected, v)
	}
}

func TestRoundingModeString(t *testing.T) {
	require := require.New(t)
	require.Equal("HALF_UP", HalfUp.String())
	require.Equal("FLOOR", Floor.String())
	require.Equal("UNKNOWN", RoundingMode(42).String())
}
