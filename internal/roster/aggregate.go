package roster

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

const (
	maxWeeks     = 5
	daysInWeek   = 7
	weeklyLimit  = 36 * 60
	rangeLayout  = "02 Jan"
	weekLabelFmt = "Week %d"
)

// Stats - четыре итоговые ячейки формы: Box1 обычные часы, Box2 сверхурочные,
// Box3 всего, Box4 оплачиваемая переработка сверх 36 часов.
type Stats struct {
	Box1 float64 `json:"box1"`
	Box2 float64 `json:"box2"`
	Box3 float64 `json:"box3"`
	Box4 float64 `json:"box4"`
}

type WeekBucket struct {
	Label string      `json:"label"`
	Range string      `json:"range"`
	Days  []DayResult `json:"days"`
	Stats Stats       `json:"stats"`
}

type Report struct {
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	Weeks        []WeekBucket `json:"weeks"`
	MonthlyStats Stats        `json:"monthlyStats"`
	Warnings     []Warning    `json:"warnings,omitempty"`
}

// tally хранит минуты, чтобы суммы не расползались на float
type tally struct {
	duty    int
	ot      int
	payable int
}

func (t *tally) add(o tally) {
	t.duty += o.duty
	t.ot += o.ot
	t.payable += o.payable
}

func (t tally) stats() Stats {
	return Stats{
		Box1: minutesToHours(t.duty),
		Box2: minutesToHours(t.ot),
		Box3: minutesToHours(t.duty + t.ot),
		Box4: minutesToHours(t.payable),
	}
}

// Calculate resolves the reporting period of ref and aggregates it.
func Calculate(shifts ShiftsMap, ref time.Time) Report {
	return Aggregate(shifts, ResolvePeriod(ref))
}

// Aggregate walks the period day by day, grouping days into 7-day buckets
// counted from period.Start. Payable overtime is computed per bucket with
// no carry-over between weeks. Bad data contributes zero hours and is
// reported through Report.Warnings.
func Aggregate(shifts ShiftsMap, period Period) Report {
	report := Report{
		StartDate: DateKey(period.Start),
		EndDate:   DateKey(period.End),
		Weeks:     []WeekBucket{},
	}

	prevNight := shifts.Day(DateKey(period.Start.AddDate(0, 0, -1))).Has(DutyNight)

	var month tally
	days := period.Days()

	for offset := 0; offset < days && len(report.Weeks) < maxWeeks; offset += daysInWeek {
		last := min(offset+daysInWeek, days)

		bucket := WeekBucket{
			Label: fmt.Sprintf(weekLabelFmt, len(report.Weeks)+1),
			Days:  make([]DayResult, 0, last-offset),
		}

		var week tally
		for i := offset; i < last; i++ {
			date := period.Start.AddDate(0, 0, i)
			key := DateKey(date)
			rec := shifts.Day(key)

			report.Warnings = append(report.Warnings, inspectDay(key, rec)...)

			var res DayResult
			res, prevNight = ProcessDay(date, rec, prevNight)

			week.duty += res.dutyMinutes
			week.ot += res.otMinutes
			bucket.Days = append(bucket.Days, res)
		}

		week.payable = max(0, week.duty+week.ot-weeklyLimit)
		month.add(week)

		bucket.Stats = week.stats()
		bucket.Range = fmt.Sprintf("%s - %s",
			period.Start.AddDate(0, 0, offset).Format(rangeLayout),
			period.Start.AddDate(0, 0, last-1).Format(rangeLayout),
		)

		report.Weeks = append(report.Weeks, bucket)
	}

	report.MonthlyStats = month.stats()

	return report
}

// inspectDay собирает предупреждения о данных, которые расчёт молча игнорирует.
func inspectDay(key string, rec DayRecord) []Warning {
	var warnings []Warning
	warn := func(format string, args ...any) {
		warnings = append(warnings, Warning{Date: key, Message: fmt.Sprintf(format, args...)})
	}

	nights := 0
	for _, code := range rec.Shifts {
		if !IsWorkCode(code) {
			warn("unknown shift code %q ignored", code)
			continue
		}
		if IsNight(code) {
			nights++
		}
	}
	if nights > 1 {
		warn("%d night shifts logged on one day", nights)
	}

	if rec.Type != NoType && !IsDayType(rec.Type) {
		warn("unknown day type %q ignored", rec.Type)
	}

	for _, code := range slices.Sorted(maps.Keys(rec.CustomStartTimes)) {
		if _, ok := ParseClock(rec.CustomStartTimes[code]); !ok {
			warn("invalid custom start time %q for %s", rec.CustomStartTimes[code], code)
		}
	}
	for _, code := range slices.Sorted(maps.Keys(rec.CustomEndTimes)) {
		if _, ok := ParseClock(rec.CustomEndTimes[code]); !ok {
			warn("invalid custom end time %q for %s", rec.CustomEndTimes[code], code)
		}
	}

	return warnings
}
