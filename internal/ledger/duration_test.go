package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var durationNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want string
	}{
		{"same moment", durationNow, "0 days"},
		{"one day", durationNow.AddDate(0, 0, -1), "1 day"},
		{"three days", durationNow.AddDate(0, 0, -3), "3 days"},
		{"six days still days", durationNow.AddDate(0, 0, -6), "6 days"},
		{"one week", durationNow.AddDate(0, 0, -7), "1 week"},
		{"two weeks", durationNow.AddDate(0, 0, -17), "2 weeks"},
		{"29 days still weeks", durationNow.AddDate(0, 0, -29), "4 weeks"},
		{"40 days becomes month", durationNow.AddDate(0, 0, -40), "1 month"},
		{"about a year", durationNow.AddDate(-1, 0, 0), "12 months"},
		{"partial month rounds down", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), "2 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Elapsed(tt.ref, durationNow))
		})
	}
}

func TestElapsedFutureDatePropagatesNegative(t *testing.T) {
	// Future reference dates are not clamped; the negative count propagates.
	got := Elapsed(durationNow.AddDate(0, 0, 2), durationNow)
	assert.Equal(t, "-2 days", got)
}

func TestElapsedSince(t *testing.T) {
	assert.Equal(t, "3 days", ElapsedSince("2024-06-12", durationNow))
	assert.Equal(t, InvalidDateLabel, ElapsedSince("not a date", durationNow))
	assert.Equal(t, InvalidDateLabel, ElapsedSince("", durationNow))
}

func TestParseDateLayouts(t *testing.T) {
	for _, value := range []string{
		"2024-06-12",
		"2024-06-12T00:00:00Z",
		"12 June 2024",
		"06/12/2024",
	} {
		got, err := ParseDate(value)
		assert.NoError(t, err, value)
		assert.Equal(t, time.June, got.Month())
		assert.Equal(t, 12, got.Day())
	}

	_, err := ParseDate("12-06-2024 late")
	assert.Error(t, err)
}
