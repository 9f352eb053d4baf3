// Package signal decodes the burst-array encoding used by telemetry exports
// for high-rate channels. A cell like "[0.1;0.2;0.3]" bundles several
// sub-samples taken within one logical tick; only the most recent one is kept.
package signal

import (
	"strconv"
	"strings"
)

// Decode parses a burst-array cell and returns its most recent value. The
// second return value is false when the cell is empty, contains no parseable
// token, or is malformed. Decode never fails hard: bad telemetry must not
// abort a run.
func Decode(raw string) (float64, bool) {
	cleaned := strings.Trim(raw, "[]\"")
	cleaned = strings.ReplaceAll(cleaned, "\"", "")
	if cleaned == "" {
		return 0, false
	}

	var last float64
	ok := false
	for _, tok := range strings.Split(cleaned, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			// One bad token invalidates the whole burst, matching the
			// all-or-nothing decode of the telemetry exporter.
			return 0, false
		}
		last = v
		ok = true
	}
	return last, ok
}

// DecodeOrZero is Decode with missing values mapped to 0.0, the substitution
// callers apply before feeding a whole column to the slip calculator.
func DecodeOrZero(raw string) float64 {
	v, ok := Decode(raw)
	if !ok {
		return 0
	}
	return v
}
