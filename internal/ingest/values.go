package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// CleanCurrency parses a currency formatted cell such as "$1,234.56" or
// "(45.00)". Blank or unparsable input yields zero; it never fails.
func CleanCurrency(s string) decimal.Decimal {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '$' || r == ',' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero
	}
	if strings.Contains(s, "(") {
		s = "-" + strings.NewReplacer("(", "", ")", "").Replace(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseNumber parses a plain numeric cell without any symbol stripping.
// Blank or unparsable input yields zero.
func ParseNumber(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

const isoDate = "2006-01-02"

// Date layouts seen in bank and card exports, tried in order.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	isoDate,
	"2006-1-2",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01-02-2006",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02 Jan 2006",
	"2 Jan 2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006 15:04:05",
}

// NormalizeDate converts a source date into YYYY-MM-DD. Dates that match no
// known layout fall back to the processing date.
func NormalizeDate(s string, now time.Time) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoDate)
		}
	}
	return now.Format(isoDate)
}

// filenameDatePattern finds a month-day pair such as "01-15" or "1-5" that is
// not glued to other digits.
var filenameDatePattern = regexp.MustCompile(`(?:^|\D)(\d{1,2})-(\d{1,2})(?:\D|$)`)

// DateFromFilename derives an invoice date from the first valid month-day pair
// in the filename, in the given year. Without one it falls back to now.
func DateFromFilename(filename string, year int, now time.Time) string {
	for _, m := range filenameDatePattern.FindAllStringSubmatch(filename, -1) {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if int(t.Month()) == month && t.Day() == day {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}
	return now.Format(isoDate)
}
