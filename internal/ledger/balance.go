package ledger

import "errors"

// ErrInvalidAmount is returned when a payment amount is zero or negative.
var ErrInvalidAmount = errors.New("payment amount must be greater than zero")

// Balance holds a tenant's outstanding obligations. Both fields are always
// non-negative; Apply clamps at zero and reports any remainder as excess.
type Balance struct {
	DepositOwed int64 `json:"deposit_owed"`
	RentOwed    int64 `json:"rent_owed"`
}

// Allocation describes how a single payment amount was split.
// Deposit + Rent + Excess always equals the paid amount.
type Allocation struct {
	Deposit int64 `json:"deposit"`
	Rent    int64 `json:"rent"`
	Excess  int64 `json:"excess"`
}

// Apply allocates a payment against a balance, deposit before rent.
// The input balance is not mutated; the caller persists the returned one.
// Any amount beyond both balances is surfaced as Allocation.Excess rather
// than dropped.
func Apply(b Balance, amount int64) (Balance, Allocation, error) {
	if amount <= 0 {
		return b, Allocation{}, ErrInvalidAmount
	}

	var alloc Allocation

	alloc.Deposit = min64(amount, b.DepositOwed)
	b.DepositOwed -= alloc.Deposit
	remaining := amount - alloc.Deposit

	alloc.Rent = min64(remaining, b.RentOwed)
	b.RentOwed -= alloc.Rent
	alloc.Excess = remaining - alloc.Rent

	return b, alloc, nil
}

// Settled reports whether nothing is owed.
func (b Balance) Settled() bool {
	return b.DepositOwed == 0 && b.RentOwed == 0
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
