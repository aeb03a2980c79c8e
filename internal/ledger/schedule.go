package ledger

import "time"

// Payment is one recorded rent transaction. Month carries the English long
// month name the payment was attributed to.
type Payment struct {
	Month  string    `json:"month"`
	Year   int       `json:"year"`
	Amount int64     `json:"amount"`
	Date   time.Time `json:"transaction_date"`
}

// Entry is one row of the month-by-month payment schedule. Displayed is the
// paid amount clamped to the month's rent; Carryover is the part above rent
// credited to the following month.
type Entry struct {
	Month     string `json:"month"`
	Year      int    `json:"year"`
	TotalPaid int64  `json:"total_paid"`
	Displayed int64  `json:"displayed"`
	Carryover int64  `json:"carryover"`
}

// Schedule computes the payment schedule from move-in through the month of
// now. Each month's total is the sum of matching payments plus the carry
// from the previous month; amounts above the month's rent become carryover.
//
// Months that are fully paid and carry nothing forward are suppressed from
// the returned entries; the second return value holds the synthetic
// carryover payments the caller should persist, each dated to the month
// following the one that produced it. A carryover from the final enumerated
// month has no next month to land in and stays on that month's entry.
//
// Schedule performs no I/O and is idempotent over the same history, so it is
// safe to recompute on every read. Persisting the proposed carryovers is the
// caller's job, guarded against duplicates.
func Schedule(moveIn time.Time, rent int64, history []Payment, now time.Time) ([]Entry, []Payment) {
	steps := monthYearsBetween(moveIn, now)
	if len(steps) == 0 {
		return nil, nil
	}

	// Payments are matched by month name, as the transaction log attributes
	// them. Aggregate once up front.
	paidByMonth := make(map[string]int64, len(steps))
	for _, p := range history {
		paidByMonth[p.Month] += p.Amount
	}

	var (
		entries    []Entry
		carryovers []Payment
		carry      int64
	)

	for i, step := range steps {
		total := carry + paidByMonth[step.Month]
		displayed := total
		var carryover int64

		if total > rent {
			carryover = total - rent
			displayed = rent
		}

		if carryover > 0 && i+1 < len(steps) {
			next := steps[i+1]
			carryovers = append(carryovers, Payment{
				Month:  next.Month,
				Year:   next.Year,
				Amount: carryover,
				Date:   now,
			})
			carry = carryover
		} else {
			carry = 0
		}

		// Fully settled months with nothing carried forward are noise in
		// the schedule view.
		if displayed >= rent && carryover == 0 {
			continue
		}

		entries = append(entries, Entry{
			Month:     step.Month,
			Year:      step.Year,
			TotalPaid: total,
			Displayed: displayed,
			Carryover: carryover,
		})
	}

	return entries, carryovers
}

// CarryoverTotal sums the carryover amounts of a schedule's proposed
// payments. The caller adds this to the tenant's rent owed when persisting.
func CarryoverTotal(carryovers []Payment) int64 {
	var total int64
	for _, p := range carryovers {
		total += p.Amount
	}
	return total
}
