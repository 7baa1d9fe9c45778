// Package mathutil applies and removes decimal scale factors without floating-point drift.
//
// Every float64 operand is converted to an exact decimal through its shortest string
// representation, the arithmetic runs in decimal and the result is converted back to
// float64 only at the end, so 12345 * 0.01 is 123.45 rather than 123.45000000000002.
package mathutil

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a result is rounded to the requested number of decimal places.
type RoundingMode int

const (
	// HalfUp rounds to the nearest neighbor, ties away from zero.
	HalfUp RoundingMode = iota
	// Down truncates toward zero.
	Down
	// Up rounds away from zero.
	Up
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
)

// String returns the name of the rounding mode.
func (m RoundingMode) String() string {
	switch m {
	case HalfUp:
		return "HALF_UP"
	case Down:
		return "DOWN"
	case Up:
		return "UP"
	case Ceiling:
		return "CEILING"
	case Floor:
		return "FLOOR"
	default:
		return "UNKNOWN"
	}
}

// Plus returns the exact decimal sum of values.
func Plus(values ...float64) (float64, error) {
	sum := decimal.Zero
	for _, v := range values {
		d, err := toDecimal(v)
		if err != nil {
			return 0, err
		}
		sum = sum.Add(d)
	}

	return toFloat(sum), nil
}

// Subtract returns minuend - subtrahend computed in decimal.
func Subtract(minuend, subtrahend float64) (float64, error) {
	a, err := toDecimal(minuend)
	if err != nil {
		return 0, err
	}
	b, err := toDecimal(subtrahend)
	if err != nil {
		return 0, err
	}

	return toFloat(a.Sub(b)), nil
}

// Multiply returns the product of values rounded to scale decimal places with mode.
// The product of no values is 1.
func Multiply(scale int32, mode RoundingMode, values ...float64) (float64, error) {
	product := decimal.NewFromInt(1)
	for _, v := range values {
		d, err := toDecimal(v)
		if err != nil {
			return 0, err
		}
		product = product.Mul(d)
	}

	return toFloat(round(product, scale, mode)), nil
}

// Divide returns dividend / divisor rounded to scale decimal places with mode.
func Divide(dividend, divisor float64, scale int32, mode RoundingMode) (float64, error) {
	a, err := toDecimal(dividend)
	if err != nil {
		return 0, err
	}
	b, err := toDecimal(divisor)
	if err != nil {
		return 0, err
	}
	if b.IsZero() {
		return 0, ErrDivisionByZero
	}

	return toFloat(quotient(a, b, scale, mode)), nil
}

// quotient rounds the exact value of a / b once, to scale places with mode.
func quotient(a, b decimal.Decimal, scale int32, mode RoundingMode) decimal.Decimal {
	q, r := a.QuoRem(b, scale)
	negative := a.Sign()*b.Sign() < 0

	var away bool
	switch mode {
	case Down:
	case Up:
		away = !r.IsZero()
	case Ceiling:
		away = !r.IsZero() && !negative
	case Floor:
		away = !r.IsZero() && negative
	default:
		return a.DivRound(b, scale)
	}
	if !away {
		return q
	}

	// QuoRem truncates toward zero
	ulp := decimal.New(1, -scale)
	if negative {
		return q.Sub(ulp)
	}

	return q.Add(ulp)
}

func round(d decimal.Decimal, scale int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case Down:
		return d.RoundDown(scale)
	case Up:
		return d.RoundUp(scale)
	case Ceiling:
		return d.RoundCeil(scale)
	case Floor:
		return d.RoundFloor(scale)
	default:
		return d.Round(scale)
	}
}

func toDecimal(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNotFinite, v)
	}

	return decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
