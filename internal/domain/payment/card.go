package payment

import (
	"regexp"
	"strings"
	"time"

	"service-marketplace/internal/pkg/errs"
)

var (
	ErrInvalidCardNumber = errs.Validation("invalid card number")
	ErrCardExpired       = errs.Validation("card is expired or expiry date is invalid")
	ErrInvalidCVV        = errs.Validation("invalid CVV")
	ErrMissingHolder     = errs.Validation("card holder name is required")
)

var (
	cardNumberRegex = regexp.MustCompile(`^[0-9]{16}$`)
	cvvRegex        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// Well known test numbers that gateways always decline.
var blockedNumbers = map[string]bool{
	"0000000000000000": true,
	"1111111111111111": true,
	"9999999999999999": true,
}

// Card is a validated payment instrument. The CVV is checked and then dropped.
type Card struct {
	number   string
	holder   string
	expMonth int
	expYear  int
}

func NewCard(number, holder string, expMonth, expYear int, cvv string, now time.Time) (Card, error) {
	number = strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if !cardNumberRegex.MatchString(number) || !luhnValid(number) {
		return Card{}, ErrInvalidCardNumber
	}
	holder = strings.TrimSpace(holder)
	if holder == "" {
		return Card{}, ErrMissingHolder
	}
	if expMonth < 1 || expMonth > 12 {
		return Card{}, ErrCardExpired
	}
	if expYear < now.Year() || (expYear == now.Year() && expMonth < int(now.Month())) {
		return Card{}, ErrCardExpired
	}
	if !cvvRegex.MatchString(strings.TrimSpace(cvv)) {
		return Card{}, ErrInvalidCVV
	}
	return Card{number: number, holder: holder, expMonth: expMonth, expYear: expYear}, nil
}

func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
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

func (c Card) IsBlocked() bool { return blockedNumbers[c.number] }

func (c Card) Last4() string {
	if len(c.number) < 4 {
		return c.number
	}
	return c.number[len(c.number)-4:]
}

func (c Card) Masked() string {
	if len(c.number) < 8 {
		return "****"
	}
	return c.number[:4] + "********" + c.Last4()
}

func (c Card) Holder() string { return c.holder }
func (c Card) IsZero() bool   { return c.number == "" }

// Label is what the ledger stores as the payment method, e.g. "stripe - ****4242".
func Label(m Method, c Card) string {
	return m.String() + " - ****" + c.Last4()
}
