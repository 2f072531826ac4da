package schema

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// fixedLimit is the magnitude from which Fixed switches to exponent notation.
const fixedLimit = 1e21

// Fixed formats v with exactly decimals digits after the point.
// Ties round away from zero on the exact binary value, -0 prints as 0,
// non-finite values print as NaN, Infinity or -Infinity and magnitudes of
// 1e21 or more use exponent form.
func Fixed(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= fixedLimit:
		return JSNumber(v)
	}
	decimals = max(decimals, 0)

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	scaled := new(big.Rat).SetFloat64(v)
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled.Mul(scaled, new(big.Rat).SetInt(pow))

	n, rem := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(scaled.Denom()) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if decimals == 0 {
		return sign + digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	cut := len(digits) - decimals
	return sign + digits[:cut] + "." + digits[cut:]
}

// JSNumber renders v the way a number is interpolated into display text:
// integers without a fraction, the shortest round-tripping decimal otherwise,
// and exponent form (1e+21, 1e-7) outside [1e-6, 1e21).
func JSNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < fixedLimit {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	expSign, expDigits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if expDigits == "" {
		expDigits = "0"
	}
	return mantissa + "e" + expSign + expDigits
}

// RoundHalfUp rounds to the nearest integer, with halves going towards +Inf.
// The fraction is compared exactly, so values just under a half and
// integers above 2^52 are left alone.
func RoundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return f
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
