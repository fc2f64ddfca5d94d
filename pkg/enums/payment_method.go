package enums

// PaymentMethod distinguishes cash-on-delivery orders from online payments.
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "Online"
)

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// NormalizePaymentMethod buckets a stored payment method value. Anything
// that is not exactly COD counts as Online; the checkout flow has written
// several spellings over time and reporting treats them all as online.
func NormalizePaymentMethod(value string) PaymentMethod {
	if value == string(PaymentMethodCOD) {
		return PaymentMethodCOD
	}
	return PaymentMethodOnline
}
