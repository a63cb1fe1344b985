package project

import (
	"math"
	"strconv"
	"strings"
)

// TotalEffort derives the aggregate estimate from the planning, design and
// publishing efforts. Development is deliberately excluded from the total.
//
// A nil input means the field was never estimated and is excluded from the
// all-unset check; a present zero still counts as estimated. The result is
// nil when all three inputs are nil, and nil again when the rounded sum is
// not positive.
func TotalEffort(planning, design, publishing *float64) *float64 {
	if planning == nil && design == nil && publishing == nil {
		return nil
	}

	var sum float64
	for _, e := range []*float64{planning, design, publishing} {
		if e != nil {
			sum += *e
		}
	}

	total := roundEffort(sum)
	if total <= 0 {
		return nil
	}
	return &total
}

// roundEffort rounds to two decimal places, half away from zero.
func roundEffort(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseEffort converts a raw form value into an effort pointer. An empty
// or unparsable string is "unset"; "0" is a present zero.
func parseEffort(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// formatEffort renders an effort pointer back into its form value.
func formatEffort(e *float64) string {
	if e == nil {
		return ""
	}
	return strconv.FormatFloat(*e, 'f', -1, 64)
}
