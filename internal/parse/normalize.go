package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
)

// DefaultDescription is substituted when a matched line carries no
// description text.
const DefaultDescription = "Imported Transaction"

// Normalize converts a raw Entry into a ParsedTransaction. The year defaults
// to now's calendar year when the date token omits it. Direction is income
// when the signed amount is >= 0, expense otherwise; the stored amount is the
// absolute value.
func Normalize(e Entry, now time.Time) (model.ParsedTransaction, error) {
	date, err := parseDate(e.DateStr, now.Year())
	if err != nil {
		return model.ParsedTransaction{}, err
	}

	signed, err := parseAmount(e.AmountStr)
	if err != nil {
		return model.ParsedTransaction{}, fmt.Errorf("Normalize: amount %q: %w", e.AmountStr, err)
	}

	direction := model.Income
	if signed.IsNegative() {
		direction = model.Expense
	}

	description := strings.TrimSpace(e.Description)
	if description == "" {
		description = DefaultDescription
	}

	return model.ParsedTransaction{
		Date:        date,
		Amount:      signed.Abs(),
		Description: description,
		Direction:   direction,
	}, nil
}

// ParseLines runs extraction and normalization over tokenized lines.
// Non-matching lines and lines that fail normalization are skipped; one bad
// line never aborts the batch.
func ParseLines(lines []string, now time.Time) []model.ParsedTransaction {
	var out []model.ParsedTransaction
	for _, line := range lines {
		entry, ok := Extract(line)
		if !ok {
			continue
		}
		tx, err := Normalize(entry, now)
		if err != nil {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// parseDate parses "DD/MM" or "DD/MM/YYYY" into a UTC midnight timestamp.
// time.Date normalizes out-of-range components (32/13 rolls over into the
// next month or year), so the round-trip check rejects them.
func parseDate(s string, defaultYear int) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 && len(parts) != 3 {
		return time.Time{}, fmt.Errorf("parseDate: malformed date %q", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parseDate: day in %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parseDate: month in %q: %w", s, err)
	}
	year := defaultYear
	if len(parts) == 3 {
		year, err = strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("parseDate: year in %q: %w", s, err)
		}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("parseDate: %q is not a valid calendar date", s)
	}
	return date, nil
}

// parseAmount converts an amount token into a signed decimal. A token with a
// comma uses Brazilian formatting: dots separate thousands and the comma is
// the decimal point ("1.234,56"). Without a comma the token is read as a
// plain decimal, so "-5.7" means minus five point seven.
func parseAmount(s string) (decimal.Decimal, error) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}
