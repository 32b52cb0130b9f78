// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package radix provides contexts binding an integer type to a radix for the
// digit functions.
//
// Every method of the form
//
//	func (c *Context[T]) Op(x T, args...) R
//
// returns the result of digit.OpRadix(x, args..., c.Radix()).
//
// A Context catches errors: if an operation fails, it returns the zero value
// of its result type and the error is recorded. Further operations with the
// context will be no-ops (they simply return zero values) until
// (*Context).Err is called to check for errors. This allows a sequence of
// operations to be written without checking each error:
//
//	c := radix.New[uint32](16)
//	d := c.Digits(x)
//	s := c.DigitSum(x)
//	if err := c.Err(); err != nil {
//		// handle error
//	}
//
// A Context is not safe for concurrent use.
package radix

import (
	"github.com/db47h/digit"
	"golang.org/x/exp/constraints"
)

// A Context binds an integer type T to a radix and records the first error
// returned by an operation.
type Context[T constraints.Integer] struct {
	radix int
	err   error
}

// New creates a new context for the given radix. If radix is outside
// [digit.MinRadix, digit.MaxRadix], the error is recorded in the context and
// reported by the first call to Err.
func New[T constraints.Integer](radix int) *Context[T] {
	return new(Context[T]).SetRadix(radix)
}

// Radix returns the radix of c.
func (c *Context[T]) Radix() int {
	return c.radix
}

// SetRadix sets c's radix and returns c. An invalid radix is recorded as c's
// error unless an error is already pending.
func (c *Context[T]) SetRadix(radix int) *Context[T] {
	c.radix = radix
	if err := digit.CheckRadix(radix); err != nil {
		c.setErr(err)
	}
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context[T]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

func (c *Context[T]) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Digits returns the digits of |x|, most significant first.
func (c *Context[T]) Digits(x T) []uint8 {
	if c.err != nil {
		return nil
	}
	d, err := digit.DigitsRadix(x, c.radix)
	c.setErr(err)
	return d
}

// AppendDigits appends the digits of |x| to dst and returns the extended slice.
func (c *Context[T]) AppendDigits(dst []uint8, x T) []uint8 {
	if c.err != nil {
		return dst
	}
	d, err := digit.AppendDigits(dst, x, c.radix)
	c.setErr(err)
	return d
}

// FromDigits returns the value of the digit sequence d. Digits out of range
// and values that do not fit in T are errors.
func (c *Context[T]) FromDigits(d []uint8) T {
	if c.err != nil {
		return 0
	}
	x, err := digit.FromDigitsRadix[T](d, c.radix)
	c.setErr(err)
	return x
}

// Len returns the number of digits of x.
func (c *Context[T]) Len(x T) int {
	if c.err != nil {
		return 0
	}
	n, err := digit.LenRadix(x, c.radix)
	c.setErr(err)
	return n
}

// NthDigit returns the i-th digit of x, from the most significant one.
func (c *Context[T]) NthDigit(x T, i int) (uint8, bool) {
	if c.err != nil {
		return 0, false
	}
	d, ok, err := digit.NthDigitRadix(x, i, c.radix)
	c.setErr(err)
	return d, ok
}

// DigitSum returns the sum of the digits of x.
func (c *Context[T]) DigitSum(x T) uint64 {
	if c.err != nil {
		return 0
	}
	s, err := digit.DigitSumRadix(x, c.radix)
	c.setErr(err)
	return s
}

// DigitProduct returns the product of the digits of x.
func (c *Context[T]) DigitProduct(x T) uint64 {
	if c.err != nil {
		return 0
	}
	p, err := digit.DigitProductRadix(x, c.radix)
	c.setErr(err)
	return p
}

// ContainsDigit reports whether d is a digit of x. A digit not smaller than
// c's radix is an error.
func (c *Context[T]) ContainsDigit(x T, d uint8) bool {
	if c.err != nil {
		return false
	}
	ok, err := digit.ContainsDigitRadix(x, d, c.radix)
	c.setErr(err)
	return ok
}

// Reverse returns x with its digits reversed.
func (c *Context[T]) Reverse(x T) T {
	if c.err != nil {
		return 0
	}
	r, err := digit.ReverseRadix(x, c.radix)
	c.setErr(err)
	return r
}

// IsPalindrome reports whether the digits of x read the same in both
// directions.
func (c *Context[T]) IsPalindrome(x T) bool {
	if c.err != nil {
		return false
	}
	ok, err := digit.IsPalindromeRadix(x, c.radix)
	c.setErr(err)
	return ok
}

// MakeMax returns the largest value written with the digits of x.
func (c *Context[T]) MakeMax(x T) T {
	if c.err != nil {
		return 0
	}
	z, err := digit.MakeMaxRadix(x, c.radix)
	c.setErr(err)
	return z
}

// MakeMin returns the smallest value written with the digits of x.
func (c *Context[T]) MakeMin(x T) T {
	if c.err != nil {
		return 0
	}
	z, err := digit.MakeMinRadix(x, c.radix)
	c.setErr(err)
	return z
}

// Concat returns the value whose digits are those of x followed by those of
// |y|.
func (c *Context[T]) Concat(x, y T) T {
	if c.err != nil {
		return 0
	}
	z, err := digit.ConcatRadix(x, y, c.radix)
	c.setErr(err)
	return z
}
