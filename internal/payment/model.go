package payment

import "errors"

type Method string

const (
	MethodCOD       Method = "COD"
	MethodCard      Method = "CARD"
	MethodEasypaisa Method = "EASYPAISA"
	MethodJazzCash  Method = "JAZZCASH"
)

var ErrUnknownMethod = errors.New("unknown payment method")

// Option is a payment method as offered on the checkout page.
type Option struct {
	Method          Method `json:"method"`
	Label           string `json:"label"`
	RequiresAccount bool   `json:"requiresAccount"`
}

// Options lists the checkout payment methods in display order.
var Options = []Option{
	{Method: MethodCOD, Label: "Cash on Delivery"},
	{Method: MethodEasypaisa, Label: "Easypaisa", RequiresAccount: true},
	{Method: MethodJazzCash, Label: "JazzCash", RequiresAccount: true},
	{Method: MethodCard, Label: "Credit/Debit Card"},
}

func (m Method) Valid() bool {
	switch m {
	case MethodCOD, MethodCard, MethodEasypaisa, MethodJazzCash:
		return true
	}
	return false
}

// RequiresAccount reports whether the method needs a mobile wallet account number.
func (m Method) RequiresAccount() bool {
	return m == MethodEasypaisa || m == MethodJazzCash
}

func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", ErrUnknownMethod
	}
	return m, nil
}
