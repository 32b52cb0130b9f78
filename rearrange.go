// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digit

import "golang.org/x/exp/constraints"

// Reverse returns x with the order of its decimal digits reversed. The sign of
// x is preserved and trailing zeros of x become leading zeros of the result,
// which are dropped: Reverse(-1200) == -21.
//
// If the reversed magnitude does not fit in T, the result wraps (see the
// package documentation): Reverse(int8(127)) == -47, that is 721 - 3*256.
func Reverse[T constraints.Integer](x T) T {
	m, neg := abs(x)
	return wrap[T](reverse(m, 10), neg)
}

// ReverseRadix is like Reverse, in the given radix.
func ReverseRadix[T constraints.Integer](x T, radix int) (T, error) {
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	m, neg := abs(x)
	return wrap[T](reverse(m, uint64(radix)), neg), nil
}

// reverse returns m with its digits in base b reversed, modulo 2**64.
func reverse(m, b uint64) uint64 {
	var r uint64
	for ; m != 0; m /= b {
		r = r*b + m%b
	}
	return r
}

// IsPalindrome reports whether the decimal digits of x read the same in both
// directions. The sign is ignored and single digit values, 0 included, are
// palindromes.
func IsPalindrome[T constraints.Integer](x T) bool {
	m, _ := abs(x)
	return isPalindrome(m, 10)
}

// IsPalindromeRadix is like IsPalindrome, in the given radix.
func IsPalindromeRadix[T constraints.Integer](x T, radix int) (bool, error) {
	if err := CheckRadix(radix); err != nil {
		return false, err
	}
	m, _ := abs(x)
	return isPalindrome(m, uint64(radix)), nil
}

// isPalindrome compares digits rather than m and reverse(m) since the latter
// may wrap.
func isPalindrome(m, b uint64) bool {
	var buf [64]uint8
	for i, j := putDigits(&buf, m, b), len(buf)-1; i < j; i, j = i+1, j-1 {
		if buf[i] != buf[j] {
			return false
		}
	}
	return true
}

// MakeMax returns the largest value that can be written with the decimal
// digits of |x|, with the sign of x: MakeMax(2026) == 6220 and
// MakeMax(-2026) == -6220. The result wraps if it does not fit in T.
func MakeMax[T constraints.Integer](x T) T {
	m, neg := abs(x)
	return wrap[T](rearrange(m, 10, true), neg)
}

// MakeMaxRadix is like MakeMax, in the given radix.
func MakeMaxRadix[T constraints.Integer](x T, radix int) (T, error) {
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	m, neg := abs(x)
	return wrap[T](rearrange(m, uint64(radix), true), neg), nil
}

// MakeMin returns the smallest value that can be written with the decimal
// digits of |x|, with the sign of x. Zeros end up as leading zeros and are
// dropped: MakeMin(2026) == 226. The result wraps if it does not fit in T.
func MakeMin[T constraints.Integer](x T) T {
	m, neg := abs(x)
	return wrap[T](rearrange(m, 10, false), neg)
}

// MakeMinRadix is like MakeMin, in the given radix.
func MakeMinRadix[T constraints.Integer](x T, radix int) (T, error) {
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	m, neg := abs(x)
	return wrap[T](rearrange(m, uint64(radix), false), neg), nil
}

// rearrange sorts the digits of m in base b, in descending order if desc is
// set, and returns the resulting value modulo 2**64.
func rearrange(m, b uint64, desc bool) uint64 {
	var (
		buf   [64]uint8
		count [MaxRadix]uint8
	)
	for _, d := range buf[putDigits(&buf, m, b):] {
		count[d]++
	}
	var r uint64
	for i := uint64(0); i < b; i++ {
		d := i
		if desc {
			d = b - 1 - i
		}
		for n := count[d]; n > 0; n-- {
			r = r*b + d
		}
	}
	return r
}

// Concat returns the value whose decimal digits are those of x followed by
// those of |y|. The sign of x applies to the whole result:
// Concat(-12, 34) == -1234 and Concat(12, -34) == 1234. The result wraps if
// it does not fit in T.
func Concat[T constraints.Integer](x, y T) T {
	return concat(x, y, 10)
}

// ConcatRadix is like Concat, in the given radix.
func ConcatRadix[T constraints.Integer](x, y T, radix int) (T, error) {
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	return concat(x, y, uint64(radix)), nil
}

func concat[T constraints.Integer](x, y T, b uint64) T {
	mx, neg := abs(x)
	my, _ := abs(y)
	return wrap[T](mx*upow(b, uint64(digitLen(my, b)))+my, neg)
}
