// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package digit implements digit-level operations on the built-in integer types:
decomposition into digits, reconstruction from digits, aggregation (sum,
product, length), rearrangement (reverse, concatenation, largest and smallest
permutation) and predicates (palindromes, digit containment), in any radix
between MinRadix and MaxRadix.

All functions are generic over golang.org/x/exp/constraints.Integer, so the
same call works for int8 through uint64, uintptr and any named type whose
underlying type is one of those:

    digit.Digits(12345)          // []uint8{1, 2, 3, 4, 5}
    digit.Digits(int8(-128))     // []uint8{1, 2, 8}
    digit.MakeMin(uint16(2026))  // 226

Functions come in pairs. The plain form works in base 10 and cannot fail. The
form with a Radix suffix takes an explicit radix and returns an error wrapping
ErrInvalidRadix when the radix is out of range:

    d, err := digit.DigitsRadix(255, 16) // []uint8{15, 15}, nil
    _, err = digit.DigitsRadix(255, 1)   // errors.Is(err, digit.ErrInvalidRadix)

Digit sequences are []uint8 ordered most-significant digit first. Zero is
represented as the single digit 0, never as an empty slice.

Sign handling: negative values are decomposed by magnitude, so Digits(-123)
and Digits(123) are identical. Functions that build a new value of the input
type (Reverse, MakeMax, MakeMin, Concat) rearrange the magnitude and then
reapply the sign of the input:

    digit.Reverse(-123)  // -321
    digit.MakeMax(-2026) // -6220

Overflow: Reverse, MakeMax, MakeMin and Concat may produce a magnitude that
does not fit in the input type (digit.Reverse(int8(127)) would be 721). These
functions do not fail; the result wraps, that is the exact value is reduced
modulo 2**N where N is the bit size of the input type, the same way Go
conversions and arithmetic on fixed-size integers behave. Use FromDigitsRadix
when overflow must be detected: it returns ErrOverflow instead of wrapping.

DigitSum and DigitProduct return a uint64. The sum and the product of the
digits of n are both bounded by |n|, so they never overflow, including for
the magnitude of math.MinInt64.

All functions are pure and safe for concurrent use. Sub-package radix wraps
the radix forms in a Context that carries a radix and collects errors, and
sub-package math provides number-theory helpers built on top of this package.
*/
package digit
