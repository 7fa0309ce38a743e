package engine

import (
	"math"
	"strconv"
)

// SignificantDigits is the precision RoundSmart keeps.
const SignificantDigits = 12

// RoundSmart rounds x to SignificantDigits significant decimal digits so that
// results like 0.1+0.2 print as 0.3. Non-finite values pass through and a zero
// result is always positive zero.
func RoundSmart(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', SignificantDigits, 64), 64)
	if err != nil {
		return x
	}
	if r == 0 {
		return 0
	}
	return r
}
