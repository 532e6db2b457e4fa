package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// IndianGroups formats a numeric string with Indian digit grouping: the last
// three integer digits form the rightmost group and everything to the left of
// them is grouped in pairs. The sign and any decimal part are preserved.
// Empty input formats as "0".
func IndianGroups(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "0"
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	head := intPart[:len(intPart)-3]
	var formatted strings.Builder
	formatted.WriteString(sign)
	// Pairs to the left of the last three digits
	if len(head)%2 == 1 {
		// A lone leading digit is always followed by another group.
		formatted.WriteString(head[:1])
		head = head[1:]
		formatted.WriteByte(',')
	}
	for i := 0; i < len(head); i += 2 {
		formatted.WriteString(head[i : i+2])
		formatted.WriteByte(',')
	}
	formatted.WriteString(intPart[len(intPart)-3:])
	formatted.WriteString(fracPart)
	return formatted.String()
}

// Amount formats a decimal amount with Indian digit grouping.
func Amount(d decimal.Decimal) string {
	return IndianGroups(d.String())
}

// NullAmount formats a nullable decimal amount; nulls format as "0".
func NullAmount(n decimal.NullDecimal) string {
	if !n.Valid {
		return "0"
	}
	return Amount(n.Decimal)
}

// DateKind tags the wire format of a date field. The upstream API is not
// consistent: loan and payment dates arrive as ISO YYYY-MM-DD strings while
// group start/end dates arrive dash-delimited as DD-MM-YYYY. Each call site
// names the kind of its field instead of guessing.
type DateKind int

const (
	// KindISO is YYYY-MM-DD, optionally with a time suffix.
	KindISO DateKind = iota
	// KindDMY is dash-delimited DD-MM-YYYY.
	KindDMY
)

const displayLayout = "02 Jan 2006"

// ParseDate parses a date string of the given kind.
func ParseDate(s string, kind DateKind) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case KindISO:
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		if len(s) >= 10 {
			return time.Parse("2006-01-02", s[:10])
		}
		return time.Time{}, fmt.Errorf("not an ISO date: %q", s)
	case KindDMY:
		return time.Parse("02-01-2006", s)
	default:
		return time.Time{}, fmt.Errorf("unknown date kind %d", kind)
	}
}

// DisplayDate formats a wire date string for display. Unparseable input
// formats as the literal "N/A".
func DisplayDate(s string, kind DateKind) string {
	t, err := ParseDate(s, kind)
	if err != nil {
		return "N/A"
	}
	return t.Format(displayLayout)
}
