// Package money handles amounts for a zero-decimal currency (VND).
// Amounts are carried as int64 in the currency's base unit; there is no
// fractional unit, so "rounding" only matters when an amount is derived
// from division (discount shares, inclusive-tax extraction).
package money

import (
	"math"
	"strconv"
	"strings"
)

// Format renders an amount with dot thousands grouping, e.g. 150000 -> "150.000".
// No decimal places are emitted.
func Format(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Coerce converts an arbitrary value into an amount. Strings may carry
// grouping separators or decimals; anything unparseable (nil, NaN, garbage)
// becomes 0. Fractional parts are truncated toward zero, matching line-level
// handling.
func Coerce(v interface{}) int64 {
	switch x := v.(type) {
	case nil:
		return 0
	case int64:
		return x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float64:
		return Floor(x)
	case float32:
		return Floor(float64(x))
	case string:
		return coerceString(x)
	default:
		return 0
	}
}

func coerceString(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Strip grouping dots/commas; keep a trailing decimal part only to drop it.
	s = strings.ReplaceAll(s, ",", "")
	if i := strings.LastIndexByte(s, '.'); i >= 0 && len(s)-i-1 != 3 {
		// A dot not followed by exactly three digits is a decimal point.
		s = s[:i]
	} else {
		s = strings.ReplaceAll(s, ".", "")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return Floor(f)
	}
	return n
}

// Floor truncates toward zero. Used for line-level amounts.
func Floor(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Trunc(f))
}

// RoundHalfUp rounds to the nearest unit, halves away from zero. Used for
// aggregated tax. The asymmetry against Floor is deliberate: it matches the
// amounts the fiscal backend stores, so re-derived breakdowns line up with
// stored totals.
func RoundHalfUp(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f < 0 {
		return -int64(math.Floor(-f + 0.5))
	}
	return int64(math.Floor(f + 0.5))
}
