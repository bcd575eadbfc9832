package enum

// SupplierStatus marks whether a supplier is available for new purchase
// orders.
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// Valid reports whether the value is a known supplier status.
func (s SupplierStatus) Valid() bool {
	switch s {
	case SupplierStatusActive, SupplierStatusInactive:
		return true
	}
	return false
}

func (s SupplierStatus) String() string {
	return string(s)
}
