// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digit

import "golang.org/x/exp/constraints"

// DigitSum returns the sum of the decimal digits of x.
func DigitSum[T constraints.Integer](x T) uint64 {
	m, _ := abs(x)
	return digitSum(m, 10)
}

// DigitSumRadix is like DigitSum, in the given radix.
func DigitSumRadix[T constraints.Integer](x T, radix int) (uint64, error) {
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	m, _ := abs(x)
	return digitSum(m, uint64(radix)), nil
}

// digitSum returns the sum of the digits of m in base b. The sum is at most m.
func digitSum(m, b uint64) uint64 {
	var s uint64
	for ; m != 0; m /= b {
		s += m % b
	}
	return s
}

// DigitProduct returns the product of the decimal digits of x. The product of
// the digits of 0 is 0.
func DigitProduct[T constraints.Integer](x T) uint64 {
	m, _ := abs(x)
	return digitProduct(m, 10)
}

// DigitProductRadix is like DigitProduct, in the given radix.
func DigitProductRadix[T constraints.Integer](x T, radix int) (uint64, error) {
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	m, _ := abs(x)
	return digitProduct(m, uint64(radix)), nil
}

// digitProduct returns the product of the digits of m in base b.
//
// For m > 0 with leading digit d0 and n digits, the product is at most
// d0 * (b-1)**(n-1) < d0 * b**(n-1) <= m, so it cannot overflow.
func digitProduct(m, b uint64) uint64 {
	if m == 0 {
		return 0
	}
	p := uint64(1)
	for ; m != 0 && p != 0; m /= b {
		p *= m % b
	}
	return p
}

// ContainsDigit reports whether d is one of the decimal digits of x. Values
// of d greater than 9 are never contained.
func ContainsDigit[T constraints.Integer](x T, d uint8) bool {
	m, _ := abs(x)
	return containsDigit(m, d, 10)
}

// ContainsDigitRadix reports whether d is one of the digits of x in the given
// radix. If d is not smaller than radix, ContainsDigitRadix returns false and
// an error wrapping ErrInvalidDigit.
func ContainsDigitRadix[T constraints.Integer](x T, d uint8, radix int) (bool, error) {
	if err := CheckRadix(radix); err != nil {
		return false, err
	}
	if err := checkDigit(d, radix); err != nil {
		return false, err
	}
	m, _ := abs(x)
	return containsDigit(m, d, uint64(radix)), nil
}

func containsDigit(m uint64, d uint8, b uint64) bool {
	if m == 0 {
		return d == 0
	}
	for ; m != 0; m /= b {
		if m%b == uint64(d) {
			return true
		}
	}
	return false
}
