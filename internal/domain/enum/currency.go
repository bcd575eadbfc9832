package enum

// Currency is the settlement currency for KHQR payments. Cash orders carry
// no currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyKHR Currency = "KHR"
)

// Valid reports whether the value is a known currency.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyKHR:
		return true
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}
