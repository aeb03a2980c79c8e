package services

import (
	"testing"
	"time"

	"rental-backend/internal/ledger"
	"rental-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var scheduleNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestPaymentMonthLabelsDepositWhileDepositRemains(t *testing.T) {
	month, year := paymentMonth("January", 2026, 500, scheduleNow)
	assert.Equal(t, models.DepositMonthLabel, month)
	assert.Equal(t, 2026, year)
}

// A payment that clears the deposit lands in its calendar month even when
// part of it paid the deposit, so the rent portion counts toward that month.
func TestPaymentMonthUsesCalendarMonthOnceDepositClears(t *testing.T) {
	month, year := paymentMonth("January", 2026, 0, scheduleNow)
	assert.Equal(t, "January", month)
	assert.Equal(t, 2026, year)
}

func TestPaymentMonthDefaultsToNow(t *testing.T) {
	month, year := paymentMonth("", 0, 0, scheduleNow)
	assert.Equal(t, "March", month)
	assert.Equal(t, 2026, year)
}

// An overpaid January produces a February credit: one insert, and the full
// credit is booked against rent owed.
func TestReconcileCarryoversInsertsNewMonth(t *testing.T) {
	computed := []ledger.Payment{{Month: "February", Year: 2026, Amount: 500, Date: scheduleNow}}

	inserts, updates, deletes, delta := reconcileCarryovers(nil, computed)
	assert.Equal(t, computed, inserts)
	assert.Empty(t, updates)
	assert.Empty(t, deletes)
	assert.Equal(t, int64(500), delta)
}

// A second payment into an already-overpaid month grows the existing
// carryover row in place instead of stacking a second one, and only the
// growth is booked.
func TestReconcileCarryoversGrowsExistingRow(t *testing.T) {
	existing := []*models.Payment{
		{ID: 7, TenantID: 1, Month: "February", Year: 2026, Amount: 500, IsCarryover: true},
	}
	computed := []ledger.Payment{{Month: "February", Year: 2026, Amount: 700, Date: scheduleNow}}

	inserts, updates, deletes, delta := reconcileCarryovers(existing, computed)
	assert.Empty(t, inserts)
	assert.Empty(t, deletes)
	assert.Equal(t, []carryoverUpdate{{ID: 7, Month: "February", Year: 2026, Amount: 700, Date: scheduleNow}}, updates)
	assert.Equal(t, int64(200), delta)
}

// Recomputing over unchanged history is a no-op.
func TestReconcileCarryoversIdempotent(t *testing.T) {
	existing := []*models.Payment{
		{ID: 7, TenantID: 1, Month: "February", Year: 2026, Amount: 500, IsCarryover: true},
		{ID: 9, TenantID: 1, Month: "March", Year: 2026, Amount: 200, IsCarryover: true},
	}
	computed := []ledger.Payment{
		{Month: "February", Year: 2026, Amount: 500, Date: scheduleNow},
		{Month: "March", Year: 2026, Amount: 200, Date: scheduleNow},
	}

	inserts, updates, deletes, delta := reconcileCarryovers(existing, computed)
	assert.Empty(t, inserts)
	assert.Empty(t, updates)
	assert.Empty(t, deletes)
	assert.Zero(t, delta)
}

// A carryover row whose source payment was deleted disappears on the next
// recompute, and the booked obligation comes back down with it.
func TestReconcileCarryoversRemovesStaleRows(t *testing.T) {
	existing := []*models.Payment{
		{ID: 7, TenantID: 1, Month: "February", Year: 2026, Amount: 500, IsCarryover: true},
	}

	inserts, updates, deletes, delta := reconcileCarryovers(existing, nil)
	assert.Empty(t, inserts)
	assert.Empty(t, updates)
	assert.Equal(t, []int{7}, deletes)
	assert.Equal(t, int64(-500), delta)
}

// End-to-end over the pure core: rent 3000, January paid 3500, schedule
// proposes a February credit of 500 whose booking raises the obligation by
// the same 500 that was posted as credit.
func TestScheduleCarryoverBalancesCreditAndObligation(t *testing.T) {
	moveIn := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	history := []ledger.Payment{{Month: "January", Year: 2026, Amount: 3500, Date: now}}

	_, carryovers := ledger.Schedule(moveIn, 3000, history, now)
	inserts, _, _, delta := reconcileCarryovers(nil, carryovers)

	assert.Len(t, inserts, 1)
	assert.Equal(t, "February", inserts[0].Month)
	assert.Equal(t, int64(500), inserts[0].Amount)
	assert.Equal(t, int64(500), delta)
}
