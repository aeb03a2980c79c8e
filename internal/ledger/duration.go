package ledger

import (
	"fmt"
	"time"
)

// InvalidDateLabel is returned for dates that cannot be parsed. It feeds
// directly into display labels, so a string sentinel is used instead of an
// error.
const InvalidDateLabel = "Invalid Date"

// dateLayouts are the formats tenant move-in dates arrive in. The first is
// the canonical storage format, the rest cover API clients.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02 January 2006",
	"01/02/2006",
}

// ParseDate parses a date string against the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", value)
}

// Elapsed returns a human-readable label for the time since ref: whole days
// under a week, whole weeks under thirty days, calendar months beyond that.
// A ref in the future yields negative counts; callers that care should guard
// before formatting.
func Elapsed(ref, now time.Time) string {
	days := int(now.Sub(ref).Hours() / 24)

	switch {
	case days < 7:
		return pluralize(days, "day")
	case days < 30:
		return pluralize(days/7, "week")
	default:
		months := (now.Year()-ref.Year())*12 + int(now.Month()) - int(ref.Month())
		if now.Day() < ref.Day() {
			months--
		}
		return pluralize(months, "month")
	}
}

// ElapsedSince parses value and formats the elapsed label, returning
// InvalidDateLabel when the date cannot be parsed.
func ElapsedSince(value string, now time.Time) string {
	ref, err := ParseDate(value)
	if err != nil {
		return InvalidDateLabel
	}
	return Elapsed(ref, now)
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
