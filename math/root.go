package math

import (
	"github.com/db47h/digit"
	"golang.org/x/exp/constraints"
)

// DigitalRoot returns the single digit obtained by repeatedly summing the
// digits of |x| in the given radix. The digital root of 0 is 0.
func DigitalRoot[T constraints.Integer](x T, radix int) (uint64, error) {
	if err := digit.CheckRadix(radix); err != nil {
		return 0, err
	}
	m := magnitude(x)
	if m == 0 {
		return 0, nil
	}
	// congruence of m and its digit sum modulo radix-1
	return 1 + (m-1)%uint64(radix-1), nil
}

// AdditivePersistence returns the number of times the digits of |x| must be
// summed to reach a single digit.
func AdditivePersistence[T constraints.Integer](x T, radix int) (int, error) {
	return persistence(x, radix, digit.DigitSumRadix[uint64])
}

// MultiplicativePersistence returns the number of times the digits of |x|
// must be multiplied to reach a single digit.
func MultiplicativePersistence[T constraints.Integer](x T, radix int) (int, error) {
	return persistence(x, radix, digit.DigitProductRadix[uint64])
}

func persistence[T constraints.Integer](x T, radix int, f func(uint64, int) (uint64, error)) (int, error) {
	if err := digit.CheckRadix(radix); err != nil {
		return 0, err
	}
	n := 0
	for m := magnitude(x); m >= uint64(radix); n++ {
		// f cannot fail once the radix is known to be valid.
		m, _ = f(m, radix)
	}
	return n, nil
}

// magnitude returns |x| as a uint64.
func magnitude[T constraints.Integer](x T) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}
