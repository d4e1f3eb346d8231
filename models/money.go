package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a stored money cell. Blank cells count as zero and a
// leading "$" or thousands separators are tolerated.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	return v, nil
}

// FormatMoney renders an amount as "$12.34".
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatCell renders an amount for storage in a sheet cell, without
// currency symbol or padding.
func FormatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
