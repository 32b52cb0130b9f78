// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digit

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Digits returns the decimal digits of |x|, most significant first. Digits
// returns []uint8{0} for x == 0.
func Digits[T constraints.Integer](x T) []uint8 {
	m, _ := abs(x)
	return appendDigits(nil, m, 10)
}

// DigitsRadix is like Digits, in the given radix.
func DigitsRadix[T constraints.Integer](x T, radix int) ([]uint8, error) {
	return AppendDigits(nil, x, radix)
}

// AppendDigits appends the digits of |x| in the given radix to dst, most
// significant first, and returns the extended slice.
func AppendDigits[T constraints.Integer](dst []uint8, x T, radix int) ([]uint8, error) {
	if err := CheckRadix(radix); err != nil {
		return dst, err
	}
	m, _ := abs(x)
	return appendDigits(dst, m, uint64(radix)), nil
}

func appendDigits(dst []uint8, m, b uint64) []uint8 {
	var buf [64]uint8
	i := putDigits(&buf, m, b)
	return append(dst, buf[i:]...)
}

// FromDigits returns the value of the decimal digit sequence d, most
// significant first. An empty sequence yields 0.
//
// The returned error wraps ErrInvalidDigit if any element of d is greater
// than 9, or ErrOverflow if the value cannot be represented as a T.
func FromDigits[T constraints.Integer](d []uint8) (T, error) {
	return FromDigitsRadix[T](d, 10)
}

// FromDigitsRadix is like FromDigits, in the given radix. Unlike the
// functions that rearrange digits, it never wraps: values that do not fit in
// T are reported with an error wrapping ErrOverflow.
//
// For any non-negative x of type T and valid radix,
//
//	d, _ := DigitsRadix(x, radix)
//	y, _ := FromDigitsRadix[T](d, radix)
//
// y == x.
func FromDigitsRadix[T constraints.Integer](d []uint8, radix int) (T, error) {
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	b := uint64(radix)
	var m uint64
	for _, v := range d {
		if err := checkDigit(v, radix); err != nil {
			return 0, err
		}
		hi, lo := bits.Mul64(m, b)
		lo, c := bits.Add64(lo, uint64(v), 0)
		if hi != 0 || c != 0 {
			return 0, overflowError[T](d, radix)
		}
		m = lo
	}
	if !fits[T](m) {
		return 0, overflowError[T](d, radix)
	}
	return T(m), nil
}

func overflowError[T constraints.Integer](d []uint8, radix int) error {
	var z T
	return fmt.Errorf("%w: digits %v in radix %d overflow %T", ErrOverflow, d, radix, z)
}

// Len returns the number of decimal digits of x. Len returns 1 for x == 0.
func Len[T constraints.Integer](x T) int {
	m, _ := abs(x)
	return decLen(m)
}

// LenRadix is like Len, in the given radix.
func LenRadix[T constraints.Integer](x T, radix int) (int, error) {
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	m, _ := abs(x)
	return digitLen(m, uint64(radix)), nil
}

// NthDigit returns the i-th decimal digit of x, counting from the most
// significant digit at index 0. ok is false if i is negative or not less
// than Len(x).
func NthDigit[T constraints.Integer](x T, i int) (d uint8, ok bool) {
	m, _ := abs(x)
	return nthDigit(m, i, 10)
}

// NthDigitRadix is like NthDigit, in the given radix.
func NthDigitRadix[T constraints.Integer](x T, i int, radix int) (d uint8, ok bool, err error) {
	if err = CheckRadix(radix); err != nil {
		return 0, false, err
	}
	m, _ := abs(x)
	d, ok = nthDigit(m, i, uint64(radix))
	return d, ok, nil
}

func nthDigit(m uint64, i int, b uint64) (uint8, bool) {
	n := digitLen(m, b)
	if i < 0 || i >= n {
		return 0, false
	}
	return uint8(m / upow(b, uint64(n-1-i)) % b), true
}
