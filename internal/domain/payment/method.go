package payment

import (
	"strings"

	"service-marketplace/internal/pkg/errs"
)

var ErrUnsupportedMethod = errs.Validation("unsupported payment method")

type Method string

const (
	MethodStripe Method = "stripe"
	MethodPayPal Method = "paypal"
)

var AllMethods = []Method{MethodStripe, MethodPayPal}

func (m Method) String() string { return string(m) }

// ParseMethod maps request and config names onto the closed set of methods.
// An empty name means the default card processor.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stripe", "card", "credit_card":
		return MethodStripe, nil
	case "paypal":
		return MethodPayPal, nil
	default:
		return "", ErrUnsupportedMethod
	}
}

// MethodFromLabel recovers the method from a ledger label written by Label.
func MethodFromLabel(label string) (Method, error) {
	name, _, _ := strings.Cut(label, " - ")
	return ParseMethod(name)
}
