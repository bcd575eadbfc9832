package enum

// AccountKind distinguishes the two account variants that can authenticate
// and create orders. Both share the same capabilities in the order-creation
// context.
type AccountKind string

const (
	AccountKindAdmin    AccountKind = "admin"
	AccountKindEmployee AccountKind = "employee"
)

// Valid reports whether the value is a known account kind.
func (k AccountKind) Valid() bool {
	switch k {
	case AccountKindAdmin, AccountKindEmployee:
		return true
	}
	return false
}

func (k AccountKind) String() string {
	return string(k)
}
