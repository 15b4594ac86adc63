package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidAmount is returned for currency fields that cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseCurrency parses a currency field as exported by bank statements:
// optional surrounding quotes and whitespace, an optional currency symbol,
// thousands separators, a leading sign, or accounting-style parentheses
// for negative values.
//
//	ParseCurrency("$1,234.56")  -> 1234.56
//	ParseCurrency("-150.00")    -> -150
//	ParseCurrency("(45.10)")    -> -45.10
func ParseCurrency(s string) (float64, error) {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
	if s == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "+")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if negative {
		v = -v
	}
	return v, nil
}

// dateLayouts are the calendar date formats accepted in statement rows.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
}

// ParseDate parses a statement date field. Only the calendar date is
// meaningful; the result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
