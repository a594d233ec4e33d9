package domain

import (
	"strconv"
	"strings"
	"time"
)

// Payment validation messages, shown to the shopper verbatim.
const (
	MsgPaymentDetailsMissing = "Please enter your payment details"
	MsgCardNumberTooShort    = "Please enter a valid card number"
	MsgCardNumberInvalid     = "Invalid card number"
	MsgCardholderMissing     = "Please enter the cardholder name"
	MsgExpiryInvalid         = "Please enter a valid expiry date (MM/YY)"
	MsgCardExpired           = "Card has expired"
	MsgCVVInvalid            = "Please enter a valid CVV"
)

// ValidatePayment returns the problems with the payment selection, in display
// order. An empty result means the payment can be submitted. Only credit card
// payments carry details; every other method is always valid.
func ValidatePayment(method PaymentMethod, details *PaymentDetails, now time.Time) []string {
	if method != PaymentCreditCard {
		return nil
	}
	if details == nil {
		return []string{MsgPaymentDetailsMissing}
	}

	var problems []string

	if len(onlyDigits(details.CardNumber)) < 13 {
		problems = append(problems, MsgCardNumberTooShort)
	} else if !LuhnValid(details.CardNumber) {
		problems = append(problems, MsgCardNumberInvalid)
	}

	if strings.TrimSpace(details.CardholderName) == "" {
		problems = append(problems, MsgCardholderMissing)
	}

	if month, year, ok := parseExpiry(details.ExpiryDate); !ok {
		problems = append(problems, MsgExpiryInvalid)
	} else {
		curYear, curMonth := now.Year()%100, int(now.Month())
		if year < curYear || (year == curYear && month < curMonth) {
			problems = append(problems, MsgCardExpired)
		}
	}

	if len(details.CVV) < 3 {
		problems = append(problems, MsgCVVInvalid)
	}

	return problems
}

// parseExpiry reads an MM/YY string. The year is returned as two digits.
func parseExpiry(s string) (month, year int, ok bool) {
	if len(s) < 5 {
		return 0, 0, false
	}
	mm, yy, found := strings.Cut(s, "/")
	if !found || len(mm) != 2 || len(yy) != 2 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(yy)
	if err != nil || year < 0 {
		return 0, 0, false
	}
	return month, year, true
}

// LuhnValid reports whether number passes the Luhn checksum. Non-digit
// characters are ignored; the remaining digits must number 13 to 19.
func LuhnValid(number string) bool {
	digits := make([]int, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
