package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduleNow = date(2024, time.March, 15)

func TestScheduleOverpaymentCarriesOver(t *testing.T) {
	moveIn := date(2024, time.January, 15)
	history := []Payment{{Month: "January", Year: 2024, Amount: 3500}}

	entries, carryovers := Schedule(moveIn, 3000, history, scheduleNow)

	require.Len(t, carryovers, 1)
	assert.Equal(t, "February", carryovers[0].Month)
	assert.Equal(t, 2024, carryovers[0].Year)
	assert.Equal(t, int64(500), carryovers[0].Amount)
	assert.Equal(t, int64(500), CarryoverTotal(carryovers))

	// January is shown with the clamped amount and its carryover; February
	// shows the carried 500; March shows nothing paid.
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Month: "January", Year: 2024, TotalPaid: 3500, Displayed: 3000, Carryover: 500}, entries[0])
	assert.Equal(t, Entry{Month: "February", Year: 2024, TotalPaid: 500, Displayed: 500, Carryover: 0}, entries[1])
	assert.Equal(t, Entry{Month: "March", Year: 2024, TotalPaid: 0, Displayed: 0, Carryover: 0}, entries[2])
}

func TestScheduleSuppressesSettledMonths(t *testing.T) {
	moveIn := date(2024, time.January, 1)
	history := []Payment{
		{Month: "January", Year: 2024, Amount: 3000},
		{Month: "February", Year: 2024, Amount: 1200},
	}

	entries, carryovers := Schedule(moveIn, 3000, history, scheduleNow)

	assert.Empty(t, carryovers)
	require.Len(t, entries, 2)
	assert.Equal(t, "February", entries[0].Month)
	assert.Equal(t, int64(1200), entries[0].Displayed)
	assert.Equal(t, "March", entries[1].Month)
}

func TestScheduleChainedCarryover(t *testing.T) {
	// 7500 against 3000/month settles January and February and pushes 1500
	// into March.
	moveIn := date(2024, time.January, 1)
	history := []Payment{{Month: "January", Year: 2024, Amount: 7500}}

	entries, carryovers := Schedule(moveIn, 3000, history, scheduleNow)

	require.Len(t, carryovers, 2)
	assert.Equal(t, Payment{Month: "February", Year: 2024, Amount: 4500, Date: scheduleNow}, carryovers[0])
	assert.Equal(t, Payment{Month: "March", Year: 2024, Amount: 1500, Date: scheduleNow}, carryovers[1])

	// January and February are fully settled with carryover shown, March is
	// partially covered by the carried 1500.
	require.Len(t, entries, 3)
	assert.Equal(t, int64(4500), entries[0].Carryover)
	assert.Equal(t, int64(1500), entries[1].Carryover)
	assert.Equal(t, Entry{Month: "March", Year: 2024, TotalPaid: 1500, Displayed: 1500, Carryover: 0}, entries[2])
}

func TestScheduleFinalMonthCarryoverStaysUnconsumed(t *testing.T) {
	moveIn := date(2024, time.March, 1)
	history := []Payment{{Month: "March", Year: 2024, Amount: 4000}}

	entries, carryovers := Schedule(moveIn, 3000, history, scheduleNow)

	// No next month to land in, so no synthetic payment is proposed; the
	// carryover stays visible on the final entry.
	assert.Empty(t, carryovers)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Month: "March", Year: 2024, TotalPaid: 4000, Displayed: 3000, Carryover: 1000}, entries[0])
}

func TestScheduleEmptyForFutureOrZeroMoveIn(t *testing.T) {
	entries, carryovers := Schedule(date(2024, time.July, 1), 3000, nil, scheduleNow)
	assert.Empty(t, entries)
	assert.Empty(t, carryovers)

	entries, carryovers = Schedule(time.Time{}, 3000, nil, scheduleNow)
	assert.Empty(t, entries)
	assert.Empty(t, carryovers)
}

func TestScheduleIdempotent(t *testing.T) {
	moveIn := date(2023, time.November, 10)
	history := []Payment{
		{Month: "November", Year: 2023, Amount: 5000},
		{Month: "December", Year: 2023, Amount: 1000},
		{Month: "January", Year: 2024, Amount: 2800},
	}

	entries1, carry1 := Schedule(moveIn, 3000, history, scheduleNow)
	entries2, carry2 := Schedule(moveIn, 3000, history, scheduleNow)

	assert.Equal(t, entries1, entries2)
	assert.Equal(t, carry1, carry2)
}

func TestScheduleConservation(t *testing.T) {
	// Sum of displayed amounts across every enumerated month plus the final
	// unconsumed carryover equals the sum of history amounts.
	const rent = int64(3000)
	moveIn := date(2024, time.January, 1)

	histories := [][]Payment{
		{{Month: "January", Amount: 3500}},
		{{Month: "January", Amount: 7500}},
		{{Month: "January", Amount: 9000}, {Month: "February", Amount: 400}},
		{{Month: "January", Amount: 1000}, {Month: "February", Amount: 2000}, {Month: "March", Amount: 2999}},
		{{Month: "March", Amount: 12000}},
		nil,
	}

	for _, history := range histories {
		entries, _ := Schedule(moveIn, rent, history, scheduleNow)

		months := MonthsBetween(moveIn, scheduleNow)
		shown := make(map[string]Entry, len(entries))
		for _, e := range entries {
			shown[e.Month] = e
		}

		var displayedSum, finalCarry int64
		for _, m := range months {
			if e, ok := shown[m]; ok {
				displayedSum += e.Displayed
				if m == months[len(months)-1] {
					finalCarry = e.Carryover
				}
			} else {
				// Suppressed months are fully paid at exactly the rent.
				displayedSum += rent
			}
		}

		var paid int64
		for _, p := range history {
			paid += p.Amount
		}

		assert.Equal(t, paid, displayedSum+finalCarry, "history: %+v", history)
	}
}
