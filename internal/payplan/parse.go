package payplan

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Titles arrive wrapped in an anchor fragment, e.g.
	// <a href='/apps/hr/payplan/...'>Accountant I</a>.
	titleRe = regexp.MustCompile(`>(.*?)<`)
	// Salary ranges carry amounts like $1,234.56.
	salaryRe = regexp.MustCompile(`\$([\d,]+\.\d{2})`)
)

// ExtractTitle returns the text between the first '>' and the following '<',
// or nil when the markup has no such delimited text. Callers treat nil as
// "title unavailable", never as a fatal condition.
func ExtractTitle(markup string) *string {
	m := titleRe.FindStringSubmatch(markup)
	if m == nil {
		return nil
	}
	return &m[1]
}

// ParseSalaryRange scans text left to right for currency amounts. Exactly two
// matches yield (first, second) in source order, with thousands separators
// stripped; any other count yields (nil, nil) rather than a guess. The first
// amount is conventionally the minimum but ordering is not enforced here.
func ParseSalaryRange(text string) (*float64, *float64) {
	matches := salaryRe.FindAllStringSubmatch(text, -1)
	if len(matches) != 2 {
		return nil, nil
	}
	low, err := strconv.ParseFloat(strings.ReplaceAll(matches[0][1], ",", ""), 64)
	if err != nil {
		return nil, nil
	}
	high, err := strconv.ParseFloat(strings.ReplaceAll(matches[1][1], ",", ""), 64)
	if err != nil {
		return nil, nil
	}
	return &low, &high
}
