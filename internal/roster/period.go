package roster

import "time"

const DateLayout = "2006-01-02"

// Period - отчётный период, всегда с воскресенья по субботу.
type Period struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// ResolvePeriod returns the pay period for the month containing ref: from the
// Sunday on or before the 1st of the month up to the day before the next
// month's period start.
func ResolvePeriod(ref time.Time) Period {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	return Period{
		Start: weekStart(monthStart),
		End:   weekStart(nextMonthStart).AddDate(0, 0, -1),
	}
}

func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// DateOnly drops the clock part and the location, keeping the calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func weekStart(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}
