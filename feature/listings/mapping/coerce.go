package mapping

import (
	"math"
	"strconv"
	"strings"
	"time"

	"listing-sync/core/utils"
)

// dateLayouts are tried in order; the feed's own format comes first.
var dateLayouts = []string{
	"2/1/2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Decimal parses a price, area or coordinate. Empty, unparseable and zero
// values are absent. A decimal comma is accepted, with "." as the thousands
// separator when both appear.
func Decimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Count parses a counter such as bedrooms or floor. "0", empty and
// unparseable values are absent.
func Count(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

// Bool is true only for "1" and "true".
func Bool(s string) bool {
	return utils.ToBool(s)
}

// Date parses a feed date and truncates it to the calendar day.
func Date(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d
	}
	return nil
}

// Address joins street, number, complement, neighborhood, city, state and
// "CEP: <postal>" with ", ", skipping empty parts.
func Address(street, number, complement, neighborhood, city, state, postal string) string {
	if postal = strings.TrimSpace(postal); postal != "" {
		postal = "CEP: " + postal
	}
	return utils.JoinNonEmpty(", ",
		strings.TrimSpace(street),
		strings.TrimSpace(number),
		strings.TrimSpace(complement),
		strings.TrimSpace(neighborhood),
		strings.TrimSpace(city),
		strings.TrimSpace(state),
		postal,
	)
}
