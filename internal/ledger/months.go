package ledger

import "time"

// MonthNames lists the English long month names in calendar order.
func MonthNames() []string {
	return []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
}

// MonthsBetween walks forward from start one calendar month at a time and
// returns the long month name for each step, through the month of now
// inclusive. The day of month is preserved where valid and clamped to the
// month's last day otherwise, so a January 31st start still visits February.
// A zero start or a start after now yields an empty slice.
func MonthsBetween(start, now time.Time) []string {
	steps := monthYearsBetween(start, now)
	if steps == nil {
		return nil
	}

	months := make([]string, len(steps))
	for i, step := range steps {
		months[i] = step.Month
	}
	return months
}

type monthYear struct {
	Month string
	Year  int
}

// monthYearsBetween is MonthsBetween keeping the year of each step, which
// the scheduler needs to date carryover records correctly.
func monthYearsBetween(start, now time.Time) []monthYear {
	if start.IsZero() || start.After(now) {
		return nil
	}

	var steps []monthYear
	walk := start
	for !walk.After(now) {
		steps = append(steps, monthYear{Month: walk.Month().String(), Year: walk.Year()})
		walk = addMonthClamped(walk)
	}
	return steps
}

// addMonthClamped advances t by one calendar month, clamping the day to the
// target month's length instead of letting the date normalize forward.
func addMonthClamped(t time.Time) time.Time {
	year, month := t.Year(), t.Month()+1
	if month > time.December {
		year, month = year+1, time.January
	}

	day := t.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
