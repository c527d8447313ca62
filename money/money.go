// Package money routes all monetary and VAT-rate arithmetic through
// shopspring/decimal so that sums and tax splits never accumulate binary
// floating-point drift. Amounts are stored and returned as float64 rounded
// to 2 decimal places; intermediates stay at full precision.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrDivideByZero reports a zero divisor in a rate or division step.
var ErrDivideByZero = errors.New("money: division by zero")

// Round2 rounds an amount to 2 decimal places (half up).
func Round2(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

// Add returns a+b rounded to 2 decimal places.
func Add(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Sub returns a-b rounded to 2 decimal places.
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Mul returns a*b rounded to 2 decimal places.
func Mul(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Div returns a/b rounded to 2 decimal places. A zero divisor is not a
// valid business state and is reported as an error, never as NaN/Inf.
func Div(a, b float64) (float64, error) {
	d := decimal.NewFromFloat(b)
	if d.IsZero() {
		return 0, ErrDivideByZero
	}
	f, _ := decimal.NewFromFloat(a).Div(d).Round(2).Float64()
	return f, nil
}

// Sum accumulates a slice of amounts exactly and rounds once at the end.
// Summing 1000 entries of 0.10 yields exactly 100.00.
func Sum(amounts []float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// ParseAmount parses a user-supplied numeric string into an amount rounded
// to 2 decimal places. Non-numeric input is a validation failure, never
// silently coerced to zero.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	f, _ := d.Round(2).Float64()
	return f, nil
}

// VATPortion returns the VAT share of gross for a percentage rate.
// When the gross already includes VAT the tax is extracted
// (gross*rate/(100+rate)), otherwise it is added on top (gross*rate/100).
// The rate fraction is kept unrounded until the final step.
func VATPortion(gross, rate float64, includesVAT bool) (float64, error) {
	g := decimal.NewFromFloat(gross)
	r := decimal.NewFromFloat(rate)
	var divisor decimal.Decimal
	if includesVAT {
		divisor = decimal.NewFromInt(100).Add(r)
	} else {
		divisor = decimal.NewFromInt(100)
	}
	if divisor.IsZero() {
		return 0, ErrDivideByZero
	}
	f, _ := g.Mul(r).Div(divisor).Round(2).Float64()
	return f, nil
}

// NetAmount returns the gross amount with its VAT portion removed when the
// gross includes VAT, or the gross unchanged when VAT is charged on top.
func NetAmount(gross, rate float64, includesVAT bool) (float64, error) {
	if !includesVAT {
		return Round2(gross), nil
	}
	vat, err := VATPortion(gross, rate, true)
	if err != nil {
		return 0, err
	}
	return Sub(gross, vat), nil
}

// TotalWithVAT returns what the client is billed: the gross itself when it
// already includes VAT, otherwise gross plus the VAT on top.
func TotalWithVAT(gross, rate float64, includesVAT bool) (float64, error) {
	if includesVAT {
		return Round2(gross), nil
	}
	vat, err := VATPortion(gross, rate, false)
	if err != nil {
		return 0, err
	}
	return Add(gross, vat), nil
}
