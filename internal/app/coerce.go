package app

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// toNumber mirrors the loose numeric handling of the public API: JSON numbers
// pass through, numeric strings are parsed, anything else counts as 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// nestedID keeps a caller-supplied id when it is a positive integer, otherwise
// falls back to the 1-based position in the list. A fractional value is not a
// usable id; it falls back rather than being truncated to a different number.
func nestedID(v any, pos int) int {
	if n := toNumber(v); n > 0 && n == math.Trunc(n) {
		return int(n)
	}
	return pos + 1
}
