package domain

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var validationNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validDetails() *PaymentDetails {
	return &PaymentDetails{
		CardNumber:     "4111 1111 1111 1111",
		CardholderName: "Ada Lovelace",
		ExpiryDate:     "12/27",
		CVV:            "123",
	}
}

// luhnComplete appends the check digit that makes prefix Luhn-valid.
func luhnComplete(prefix string) string {
	for d := 0; d <= 9; d++ {
		candidate := prefix + strconv.Itoa(d)
		if LuhnValid(candidate) {
			return candidate
		}
	}
	panic("no check digit for " + prefix)
}

func TestLuhnValid_KnownNumbers(t *testing.T) {
	assert.True(t, LuhnValid("4111111111111111"))
	assert.False(t, LuhnValid("4111111111111112"))
	assert.True(t, LuhnValid("4111-1111-1111-1111"))
	assert.False(t, LuhnValid("411111111111"))
}

func TestValidatePayment_LuhnValidLengthsAccepted(t *testing.T) {
	for n := 13; n <= 19; n++ {
		prefix := "4"
		for len(prefix) < n-1 {
			prefix += strconv.Itoa(len(prefix) % 10)
		}
		details := validDetails()
		details.CardNumber = luhnComplete(prefix)

		problems := ValidatePayment(PaymentCreditCard, details, validationNow)
		assert.NotContains(t, problems, MsgCardNumberTooShort, "length %d", n)
		assert.NotContains(t, problems, MsgCardNumberInvalid, "length %d", n)
	}
}

func TestValidatePayment_LuhnInvalidGivesOneCardError(t *testing.T) {
	for n := 13; n <= 19; n++ {
		prefix := "5"
		for len(prefix) < n-1 {
			prefix += "3"
		}
		valid := luhnComplete(prefix)
		last := valid[len(valid)-1] - '0'
		invalid := valid[:len(valid)-1] + strconv.Itoa(int((last+1)%10))

		details := validDetails()
		details.CardNumber = invalid
		assert.Equal(t, []string{MsgCardNumberInvalid}, ValidatePayment(PaymentCreditCard, details, validationNow), "length %d", n)
	}
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *PaymentDetails)
		want   []string
	}{
		{"valid", func(d *PaymentDetails) {}, nil},
		{"short number", func(d *PaymentDetails) { d.CardNumber = "4111 1111" }, []string{MsgCardNumberTooShort}},
		{"empty number", func(d *PaymentDetails) { d.CardNumber = "" }, []string{MsgCardNumberTooShort}},
		{"separators are not digits", func(d *PaymentDetails) { d.CardNumber = "4111-1111-111" }, []string{MsgCardNumberTooShort}},
		{"luhn failure", func(d *PaymentDetails) { d.CardNumber = "4111111111111112" }, []string{MsgCardNumberInvalid}},
		{"too long", func(d *PaymentDetails) { d.CardNumber = "41111111111111111111" }, []string{MsgCardNumberInvalid}},
		{"no name", func(d *PaymentDetails) { d.CardholderName = "  " }, []string{MsgCardholderMissing}},
		{"short expiry", func(d *PaymentDetails) { d.ExpiryDate = "1/27" }, []string{MsgExpiryInvalid}},
		{"month out of range", func(d *PaymentDetails) { d.ExpiryDate = "13/27" }, []string{MsgExpiryInvalid}},
		{"expired last year", func(d *PaymentDetails) { d.ExpiryDate = "12/24" }, []string{MsgCardExpired}},
		{"expired last month", func(d *PaymentDetails) { d.ExpiryDate = "05/25" }, []string{MsgCardExpired}},
		{"expires this month", func(d *PaymentDetails) { d.ExpiryDate = "06/25" }, nil},
		{"short cvv", func(d *PaymentDetails) { d.CVV = "12" }, []string{MsgCVVInvalid}},
		{
			"everything wrong",
			func(d *PaymentDetails) { *d = PaymentDetails{CardNumber: "4111111111111112", ExpiryDate: "01/20", CVV: "1"} },
			[]string{MsgCardNumberInvalid, MsgCardholderMissing, MsgCardExpired, MsgCVVInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(d)
			assert.Equal(t, tt.want, ValidatePayment(PaymentCreditCard, d, validationNow))
		})
	}
}

func TestValidatePayment_MissingDetailsOnlyOneMessage(t *testing.T) {
	assert.Equal(t, []string{MsgPaymentDetailsMissing}, ValidatePayment(PaymentCreditCard, nil, validationNow))
}

func TestValidatePayment_NonCardMethodsAlwaysValid(t *testing.T) {
	assert.Empty(t, ValidatePayment(PaymentPayPal, nil, validationNow))
	assert.Empty(t, ValidatePayment(PaymentApplePay, &PaymentDetails{CardNumber: "1"}, validationNow))
}
