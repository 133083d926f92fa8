package cart

import (
	"math"
	"strconv"
	"strings"
)

// MaxQuantity caps a single line so that totals and merges cannot overflow.
const MaxQuantity = math.MaxInt32

// ClampQuantity keeps qty within [1, MaxQuantity].
func ClampQuantity(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}

// NormalizeQuantity turns raw shopper input into a usable quantity.
// Non-numeric, zero and negative input all become 1; fractions are truncated.
func NormalizeQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return ClampQuantity(n)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 1 {
		return 1
	}
	if f > MaxQuantity {
		return MaxQuantity
	}
	return int(f)
}
