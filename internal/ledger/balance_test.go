package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDepositBeforeRent(t *testing.T) {
	updated, alloc, err := Apply(Balance{DepositOwed: 5000, RentOwed: 3000}, 2000)
	require.NoError(t, err)

	assert.Equal(t, Balance{DepositOwed: 3000, RentOwed: 3000}, updated)
	assert.Equal(t, Allocation{Deposit: 2000, Rent: 0, Excess: 0}, alloc)
}

func TestApplySpillsIntoRent(t *testing.T) {
	updated, alloc, err := Apply(Balance{DepositOwed: 1000, RentOwed: 3000}, 2500)
	require.NoError(t, err)

	assert.Equal(t, Balance{DepositOwed: 0, RentOwed: 1500}, updated)
	assert.Equal(t, Allocation{Deposit: 1000, Rent: 1500, Excess: 0}, alloc)
}

func TestApplySurfacesExcess(t *testing.T) {
	updated, alloc, err := Apply(Balance{DepositOwed: 500, RentOwed: 300}, 1000)
	require.NoError(t, err)

	assert.Equal(t, Balance{}, updated)
	assert.Equal(t, Allocation{Deposit: 500, Rent: 300, Excess: 200}, alloc)
	assert.True(t, updated.Settled())
}

func TestApplyRejectsNonPositiveAmount(t *testing.T) {
	original := Balance{DepositOwed: 100, RentOwed: 100}

	for _, amount := range []int64{0, -1, -5000} {
		updated, alloc, err := Apply(original, amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Equal(t, original, updated, "no partial mutation on error")
		assert.Equal(t, Allocation{}, alloc)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	b := Balance{DepositOwed: 400, RentOwed: 600}
	_, _, err := Apply(b, 1000)
	require.NoError(t, err)
	assert.Equal(t, Balance{DepositOwed: 400, RentOwed: 600}, b)
}

// Conservation, priority and non-negativity over a spread of inputs.
func TestApplyProperties(t *testing.T) {
	balances := []Balance{
		{},
		{DepositOwed: 1},
		{RentOwed: 1},
		{DepositOwed: 3000, RentOwed: 0},
		{DepositOwed: 0, RentOwed: 4500},
		{DepositOwed: 7500, RentOwed: 12000},
		{DepositOwed: 1, RentOwed: 1},
	}
	amounts := []int64{1, 2, 999, 3000, 7500, 19500, 100000}

	for _, b := range balances {
		for _, amount := range amounts {
			updated, alloc, err := Apply(b, amount)
			require.NoError(t, err)

			assert.Equal(t, amount, alloc.Deposit+alloc.Rent+alloc.Excess,
				"conservation: %+v amount=%d", b, amount)

			assert.GreaterOrEqual(t, updated.DepositOwed, int64(0))
			assert.GreaterOrEqual(t, updated.RentOwed, int64(0))

			// Deposit is always drained first.
			if b.DepositOwed > 0 {
				assert.Equal(t, min64(amount, b.DepositOwed), alloc.Deposit)
			}
			if updated.DepositOwed > 0 {
				assert.Zero(t, alloc.Rent, "rent allocated while deposit outstanding")
			}
		}
	}
}
