package math

import (
	"math/bits"

	"github.com/db47h/digit"
	"golang.org/x/exp/constraints"
)

// IsHarshad reports whether |x| is divisible by the sum of its digits in the
// given radix. 0 is not a Harshad number.
func IsHarshad[T constraints.Integer](x T, radix int) (bool, error) {
	s, err := digit.DigitSumRadix(x, radix)
	if err != nil || s == 0 {
		return false, err
	}
	return magnitude(x)%s == 0, nil
}

// IsArmstrong reports whether |x| is equal to the sum of its digits in the
// given radix, each raised to the power of the number of digits (a
// narcissistic number). Single digit values are Armstrong numbers.
func IsArmstrong[T constraints.Integer](x T, radix int) (bool, error) {
	d, err := digit.DigitsRadix(x, radix)
	if err != nil {
		return false, err
	}
	m := magnitude(x)
	var s uint64
	for _, v := range d {
		p, ok := upow(uint64(v), uint64(len(d)))
		if !ok {
			return false, nil
		}
		var c uint64
		s, c = bits.Add64(s, p, 0)
		if c != 0 || s > m {
			return false, nil
		}
	}
	return s == m, nil
}

// upow returns x**n and false if the result overflows a uint64.
func upow(x, n uint64) (uint64, bool) {
	z := uint64(1)
	for ; n > 0; n-- {
		hi, lo := bits.Mul64(z, x)
		if hi != 0 {
			return 0, false
		}
		z = lo
	}
	return z, true
}
