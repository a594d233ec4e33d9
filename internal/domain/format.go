package domain

import (
	"strings"
	"time"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if isDigit(r) {
			return r
		}
		return -1
	}, s)
}

// FormatCardNumber groups the first 16 digits of value in blocks of four.
// Input without at least four digits is returned unchanged.
func FormatCardNumber(value string) string {
	d := onlyDigits(value)
	if len(d) < 4 {
		return value
	}
	if len(d) > 16 {
		d = d[:16]
	}
	var b strings.Builder
	for i := 0; i < len(d); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d[i:min(i+4, len(d))])
	}
	return b.String()
}

// MaskCardNumber hides all but the last four digits.
func MaskCardNumber(value string) string {
	d := onlyDigits(value)
	if len(d) < 4 {
		return ""
	}
	return "•••• " + d[len(d)-4:]
}

// FormatExpiryDate turns "1225" into "12/25". Input with fewer than three
// digits is returned unchanged.
func FormatExpiryDate(value string) string {
	d := onlyDigits(value)
	if len(d) < 3 {
		return value
	}
	return d[:2] + "/" + d[2:min(4, len(d))]
}

// FormatPhoneNumber renders up to ten digits as (XXX) XXX-XXXX.
func FormatPhoneNumber(value string) string {
	d := onlyDigits(value)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:min(10, len(d))]
	}
}

// FormatPostalCode keeps digits and dashes.
func FormatPostalCode(value string) string {
	return strings.Map(func(r rune) rune {
		if isDigit(r) || r == '-' {
			return r
		}
		return -1
	}, value)
}

// FormatOrderDate renders t like "Monday, January 1, 2024".
func FormatOrderDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
