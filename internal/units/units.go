// Package units parses human-readable size tokens as emitted by
// `docker stats` (e.g. "3.77MiB", "187.4GiB", "573GB").
package units

import (
	"strconv"
	"strings"
)

// multipliers maps a unit suffix to its byte multiplier. Matching is
// case-sensitive: docker emits "kB" and "KiB" etc. exactly.
var multipliers = map[string]float64{
	"B":   1,
	"kB":  1000,
	"KB":  1000,
	"MB":  1000 * 1000,
	"GB":  1000 * 1000 * 1000,
	"TB":  1000 * 1000 * 1000 * 1000,
	"KiB": 1024,
	"MiB": 1024 * 1024,
	"GiB": 1024 * 1024 * 1024,
	"TiB": 1024 * 1024 * 1024 * 1024,
}

// ToBytes converts a size token into a byte count. Malformed input
// degrades to 0 rather than an error: an empty or unparsable numeric
// part counts as 0, and an unrecognized unit counts as raw bytes.
func ToBytes(token string) float64 {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0
	}

	// Split into a leading numeric run and the trailing unit.
	i := 0
	for i < len(token) {
		c := token[i]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		i++
	}
	num, unit := token[:i], token[i:]

	val := 0.0
	if num != "" {
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0
		}
		val = v
	}

	mult, ok := multipliers[unit]
	if !ok {
		mult = 1
	}
	return val * mult
}
