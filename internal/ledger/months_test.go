package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		now   time.Time
		want  []string
	}{
		{
			name:  "same month",
			start: date(2024, time.March, 15),
			now:   date(2024, time.March, 15),
			want:  []string{"March"},
		},
		{
			name:  "three whole months",
			start: date(2024, time.January, 15),
			now:   date(2024, time.March, 15),
			want:  []string{"January", "February", "March"},
		},
		{
			name:  "partial last month excluded",
			start: date(2024, time.January, 20),
			now:   date(2024, time.March, 15),
			want:  []string{"January", "February"},
		},
		{
			name:  "year boundary",
			start: date(2023, time.November, 1),
			now:   date(2024, time.February, 1),
			want:  []string{"November", "December", "January", "February"},
		},
		{
			name:  "start after now",
			start: date(2024, time.May, 1),
			now:   date(2024, time.March, 15),
			want:  nil,
		},
		{
			name:  "zero start",
			start: time.Time{},
			now:   date(2024, time.March, 15),
			want:  nil,
		},
		{
			name:  "january 31 does not skip february",
			start: date(2024, time.January, 31),
			now:   date(2024, time.April, 30),
			want:  []string{"January", "February", "March", "April"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.start, tt.now))
		})
	}
}

func TestMonthYearsBetweenCarriesYears(t *testing.T) {
	steps := monthYearsBetween(date(2023, time.December, 5), date(2024, time.January, 20))
	assert.Equal(t, []monthYear{
		{Month: "December", Year: 2023},
		{Month: "January", Year: 2024},
	}, steps)
}

func TestAddMonthClamped(t *testing.T) {
	assert.Equal(t, date(2024, time.February, 29), addMonthClamped(date(2024, time.January, 31)))
	assert.Equal(t, date(2023, time.February, 28), addMonthClamped(date(2023, time.January, 31)))
	assert.Equal(t, date(2024, time.January, 15), addMonthClamped(date(2023, time.December, 15)))
}

func TestMonthNames(t *testing.T) {
	names := MonthNames()
	assert.Len(t, names, 12)
	assert.Equal(t, "January", names[0])
	assert.Equal(t, "December", names[11])
}
