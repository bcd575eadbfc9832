package enum

// PaymentMethod is how a shop order was paid.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodKHQR PaymentMethod = "khqr"
)

// Valid reports whether the value is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodKHQR:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
