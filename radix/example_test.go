package radix_test

import (
	"fmt"

	"github.com/db47h/digit/radix"
)

// luhn computes the Luhn check digit of the decimal number x. It uses a
// single context for all digit operations and checks for errors once.
func luhn(ctx *radix.Context[uint64], x uint64) (uint8, error) {
	var sum uint64
	n := ctx.Len(x)
	for i := 0; i < n; i++ {
		d, _ := ctx.NthDigit(x, n-1-i)
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += uint64(d)
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("luhn(%d): %w", x, err)
	}
	return uint8((10 - sum%10) % 10), nil
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := radix.New[uint64](10)
	c, err := luhn(ctx, 7992739871)
	fmt.Println(c, err)

	hex := radix.New[uint32](16)
	fmt.Println(hex.Digits(0xcafe), hex.MakeMax(0xcafe) == 0xfeca, hex.IsPalindrome(0xabba))

	// errors are sticky until checked
	hex.ContainsDigit(0xcafe, 16)
	fmt.Println(hex.Digits(0xcafe))
	fmt.Println(hex.Err())
	fmt.Println(hex.Digits(0xcafe))

	_, err = luhn(radix.New[uint64](1), 7992739871)
	fmt.Println(err)
	// Output:
	// 3 <nil>
	// [12 10 15 14] true true
	// []
	// digit: invalid digit 16 for radix 16
	// [12 10 15 14]
	// luhn(7992739871): digit: invalid radix 1
}
