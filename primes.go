// Copyright (c) 2026 Yan Qianyu
//
// MIT License

package etable

import "math/big"

// functions for Prime number calculations

// smallFactors are the divisors we try before paying for a real primality
// test; they weed out most composite candidates.
var smallFactors = [...]int{3, 5, 7, 11, 13}

func hasEasyFactors(src int) bool {
	for _, p := range smallFactors {
		if src != p && src%p == 0 {
			return true
		}
	}
	return false
}

// primeGte returns the first prime greater than or equal to src. We use it
// to size the bucket arrays of the sub-tables.
func primeGte(src int) int {
	if src <= 2 {
		return 2
	}
	if src%2 == 0 {
		src++
	}

	for {
		// ProbablyPrime is 100% accurate for inputs less than 2⁶⁴.
		if !hasEasyFactors(src) && big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}
