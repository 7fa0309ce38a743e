// Package numfmt turns calculator numbers into display strings.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// MaxDigits is the number of significant characters shown before a number
// collapses into exponential notation.
const MaxDigits = 12

// Result formats x as editor text: the shortest plain decimal that parses
// back to x, never in exponential form.
func Result(x float64) string {
	if s, ok := nonFinite(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// HistoryNumber formats a stored result for a history listing. Numbers whose
// digits (sign and point excluded) exceed MaxDigits use exponential notation
// with six fraction digits.
func HistoryNumber(x float64) string {
	if s, ok := nonFinite(x); ok {
		return s
	}
	raw := Result(x)
	if compactLen(raw) > MaxDigits {
		return Exponential(x, 6)
	}
	return raw
}

// HistoryExpression rewrites every long numeric literal in expr with
// four-digit exponential notation and leaves everything else untouched.
// A literal is an optional '-', digits, and an optional '.' followed by digits.
func HistoryExpression(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	for i := 0; i < len(expr); {
		start := i
		if expr[i] == '-' && i+1 < len(expr) && isDigit(expr[i+1]) {
			i++
		}
		if i >= len(expr) || !isDigit(expr[i]) {
			b.WriteByte(expr[start])
			i = start + 1
			continue
		}
		for i < len(expr) && isDigit(expr[i]) {
			i++
		}
		if i+1 < len(expr) && expr[i] == '.' && isDigit(expr[i+1]) {
			i++
			for i < len(expr) && isDigit(expr[i]) {
				i++
			}
		}
		lit := expr[start:i]
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil || math.IsInf(v, 0) || compactLen(lit) <= MaxDigits {
			b.WriteString(lit)
			continue
		}
		b.WriteString(Exponential(v, 4))
	}
	return b.String()
}

// Exponential formats x as d.ddde±n with the given fraction digits, dropping
// the '+' sign and leading zeros of the exponent: 1.5e21, 2.5e-7.
func Exponential(x float64, digits int) string {
	if s, ok := nonFinite(x); ok {
		return s
	}
	s := strconv.FormatFloat(x, 'e', digits, 64)
	mant, exp, found := strings.Cut(s, "e")
	if !found {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "e" + strconv.Itoa(n)
}

func nonFinite(x float64) (string, bool) {
	switch {
	case math.IsNaN(x):
		return "NaN", true
	case math.IsInf(x, 1):
		return "Infinity", true
	case math.IsInf(x, -1):
		return "-Infinity", true
	}
	return "", false
}

func compactLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '-' && s[i] != '.' {
			n++
		}
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
