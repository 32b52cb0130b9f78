// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digit_test

import (
	"errors"
	"fmt"

	"github.com/db47h/digit"
)

func Example() {
	fmt.Println(digit.Digits(12345))
	fmt.Println(digit.DigitSum(12345), digit.DigitProduct(123))
	fmt.Println(digit.Reverse(12345), digit.IsPalindrome(12321))
	fmt.Println(digit.MakeMax(2026), digit.MakeMin(2026))
	fmt.Println(digit.ContainsDigit(12345, 3))
	// Output:
	// [1 2 3 4 5]
	// 15 6
	// 54321 true
	// 6220 226
	// true
}

func ExampleDigitsRadix() {
	d, err := digit.DigitsRadix(6, 2)
	fmt.Println(d, err)
	d, err = digit.DigitsRadix(255, 16)
	fmt.Println(d, err)
	_, err = digit.DigitsRadix(255, 1)
	fmt.Println(errors.Is(err, digit.ErrInvalidRadix), err)
	// Output:
	// [1 1 0] <nil>
	// [15 15] <nil>
	// true digit: invalid radix 1
}

func ExampleFromDigitsRadix() {
	x, err := digit.FromDigitsRadix[uint16]([]uint8{1, 1, 0}, 2)
	fmt.Println(x, err)
	_, err = digit.FromDigits[int8]([]uint8{1, 2, 8})
	fmt.Println(errors.Is(err, digit.ErrOverflow))
	// Output:
	// 6 <nil>
	// true
}

func ExampleReverse() {
	fmt.Println(digit.Reverse(-123))
	fmt.Println(digit.Reverse(1200))
	// 721 does not fit in an int8
	fmt.Println(digit.Reverse(int8(127)))
	// Output:
	// -321
	// 21
	// -47
}

func ExampleContainsDigitRadix() {
	ok, err := digit.ContainsDigitRadix(255, 15, 16)
	fmt.Println(ok, err)
	ok, err = digit.ContainsDigitRadix(255, 16, 16)
	fmt.Println(ok, err)
	// Output:
	// true <nil>
	// false digit: invalid digit 16 for radix 16
}

func ExampleConcat() {
	fmt.Println(digit.Concat(12, 34), digit.Concat(-12, 34))
	// Output:
	// 1234 -1234
}
