package enum

// PurchaseStatus tracks a purchase order through its lifecycle. Only
// complete purchase orders count toward the expense series.
type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusComplete PurchaseStatus = "complete"
	PurchaseStatusCancel   PurchaseStatus = "cancel"
)

// Valid reports whether the value is a known purchase status.
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusComplete, PurchaseStatusCancel:
		return true
	}
	return false
}

func (s PurchaseStatus) String() string {
	return string(s)
}
