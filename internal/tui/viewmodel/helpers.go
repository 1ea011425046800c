package viewmodel

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// TimestampLayout mirrors the en-US locale date-time rendering.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// timestampLayouts are tried in order. Layouts without a zone are read in the
// display location.
var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02 15:04:05Z07:00", true},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", false},
}

// FormatCurrency renders a USD amount with grouping and two decimals,
// for example $1,234.50 or -$5.00. Amounts of any magnitude are grouped
// from their decimal text.
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, cents := fixed[:len(fixed)-3], fixed[len(fixed)-3:]

	return sign + "$" + groupThousands(whole) + cents
}

// groupThousands inserts en-US separators into a string of digits.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatScore renders a fraud score.
func FormatScore(score int) string {
	return strconv.Itoa(score)
}

// FormatTimestamp renders an ISO 8601 timestamp as a local date-time in loc.
// Text that does not parse is returned as is.
func FormatTimestamp(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	ts, ok := ParseTimestamp(raw, loc)
	if !ok {
		return SanitizeForDisplay(raw)
	}
	return ts.In(loc).Format(TimestampLayout)
}

// ParseTimestamp parses the ISO 8601 variants models commonly emit.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, candidate := range timestampLayouts {
		var (
			ts  time.Time
			err error
		)
		if candidate.zoned {
			ts, err = time.Parse(candidate.layout, raw)
		} else {
			ts, err = time.ParseInLocation(candidate.layout, raw, loc)
		}
		if err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// SanitizeForDisplay removes potentially problematic characters for terminal
// display and composes combining sequences so widths are counted per glyph.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return ' '
		}
		return r
	}, s)

	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// Truncate shortens s to width runes, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
