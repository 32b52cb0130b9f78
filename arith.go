// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digit

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

var pow10s = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// maxDigits[n] is the number of decimal digits of the largest n bits number.
var maxDigits = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decLen returns the number of decimal digits of x, 1 for x == 0.
func decLen(x uint64) int {
	if x == 0 {
		return 1
	}
	d := maxDigits[bits.Len64(x)]
	if x < pow10s[d-1] {
		d--
	}
	return int(d)
}

// digitLen returns the number of digits of x in base b, 1 for x == 0.
func digitLen(x, b uint64) int {
	switch {
	case b == 10:
		return decLen(x)
	case x == 0:
		return 1
	case b&(b-1) == 0:
		// power of two radix
		s := bits.TrailingZeros64(b)
		return (bits.Len64(x) + s - 1) / s
	}
	n := 0
	for ; x != 0; x /= b {
		n++
	}
	return n
}

// upow returns x**n, modulo 2**64.
func upow(x, n uint64) uint64 {
	if n == 0 {
		return 1
	}
	z := x
	y := uint64(1)
	for n > 1 {
		if n%2 != 0 {
			y *= z
		}
		z *= z
		n /= 2
	}
	return z * y
}

// abs returns the magnitude of x and whether x is negative.
func abs[T constraints.Integer](x T) (m uint64, neg bool) {
	if x < 0 {
		// x+1 keeps -x in range for the smallest value of T.
		return uint64(-(x + 1)) + 1, true
	}
	return uint64(x), false
}

// wrap converts the magnitude m to T and negates it if neg is set. The result
// is the exact value modulo 2**N, N being the size of T in bits.
func wrap[T constraints.Integer](m uint64, neg bool) T {
	z := T(m)
	if neg {
		z = -z
	}
	return z
}

// fits reports whether the non-negative value m is representable as a T.
func fits[T constraints.Integer](m uint64) bool {
	z := T(m)
	return z >= 0 && uint64(z) == m
}

// putDigits stores the digits of x in base b at the end of buf and returns
// the index of the most significant one.
func putDigits(buf *[64]uint8, x, b uint64) int {
	i := len(buf)
	if b == 10 {
		// constant divisor for the common case
		for {
			i--
			q := x / 10
			buf[i] = uint8(x - q*10)
			x = q
			if x == 0 {
				return i
			}
		}
	}
	for {
		i--
		buf[i] = uint8(x % b)
		x /= b
		if x == 0 {
			return i
		}
	}
}
