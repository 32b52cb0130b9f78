// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides recreational number theory functions built on the
// digit functions of package digit: digital roots, persistence and digit
// based predicates.
//
// All functions work on the magnitude of their argument and return an error
// wrapping digit.ErrInvalidRadix if the radix is not supported.
package math
