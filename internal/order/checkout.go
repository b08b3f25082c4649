package order

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"bazaar-be/internal/payment"

	"github.com/go-playground/validator/v10"
)

// Cities are the delivery cities offered at checkout.
var Cities = []string{
	"Karachi", "Lahore", "Islamabad", "Faisalabad", "Rawalpindi",
	"Multan", "Gujranwala", "Hyderabad", "Peshawar", "Quetta",
	"Sargodha", "Sialkot", "Bahawalpur", "Sukkur", "Jhang",
}

var mobileAccount = regexp.MustCompile(`^03\d{9}$`)

type CheckoutInput struct {
	PaymentMethod  payment.Method  `json:"paymentMethod" validate:"required"`
	PaymentAccount string          `json:"paymentAccount"`
	Shipping       ShippingDetails `json:"shipping"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with checkout rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("city", func(fl validator.FieldLevel) bool {
			return isCity(fl.Field().String())
		})
		v.RegisterStructValidation(checkoutRules, CheckoutInput{})
		validate = v
	})
	return validate
}

func checkoutRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(CheckoutInput)

	if !in.PaymentMethod.Valid() {
		sl.ReportError(in.PaymentMethod, "paymentMethod", "PaymentMethod", "oneof", "COD CARD EASYPAISA JAZZCASH")
		return
	}
	if in.PaymentMethod.RequiresAccount() {
		account := NormalizeAccount(in.PaymentAccount)
		if account == "" {
			sl.ReportError(in.PaymentAccount, "paymentAccount", "PaymentAccount", "required", "")
		} else if !mobileAccount.MatchString(account) {
			sl.ReportError(in.PaymentAccount, "paymentAccount", "PaymentAccount", "mobile", "")
		}
	}
}

// NormalizeAccount strips the separators customers type, e.g. 0300-1234567.
func NormalizeAccount(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(s))
}

func isCity(s string) bool {
	for _, c := range Cities {
		if c == s {
			return true
		}
	}
	return false
}

// Validate checks the input and returns it with the account normalized.
func (in CheckoutInput) Validate() (CheckoutInput, error) {
	if err := Validator().Struct(in); err != nil {
		return in, err
	}
	in.PaymentAccount = NormalizeAccount(in.PaymentAccount)
	return in, nil
}
