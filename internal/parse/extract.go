package parse

import (
	"regexp"
	"strings"
)

// Entry is the raw string triple pulled from one statement line. Numeric and
// date conversion is deferred to Normalize.
type Entry struct {
	DateStr     string
	AmountStr   string
	Description string
}

// linePattern recognizes the single supported layout:
//
//	<DD/MM[/YYYY]> <signed amount> <description>
//
// The amount token is either Brazilian-formatted ("1.234,56", dot as
// thousands separator and comma as decimal point) or a plain decimal
// ("-5.7", "40"). One structural pattern trades recall for predictability:
// statements full of headers and footers are expected, and anything that
// does not match is dropped rather than guessed at.
var linePattern = regexp.MustCompile(
	`^\s*(\d{2}/\d{2}(?:/\d{4})?)\s+([+-]?\d{1,3}(?:\.\d{3})+(?:,\d+)?|[+-]?\d+(?:[.,]\d+)?)(?:\s+(.*))?$`,
)

// Extract applies the structural pattern to a single line. The second return
// value is false for non-matching lines, which callers discard silently.
func Extract(line string) (Entry, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{
		DateStr:     m[1],
		AmountStr:   m[2],
		Description: strings.TrimSpace(m[3]),
	}, true
}
