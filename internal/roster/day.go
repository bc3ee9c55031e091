package roster

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	OvertimeReason = "Essential for duty"

	leaveMinutes = 6 * 60
	minutesInDay = 24 * 60
)

// DayResult - строка ведомости за один день.
type DayResult struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`

	DutyIn  string `json:"dutyIn"`
	DutyOut string `json:"dutyOut"`
	DutyHrs string `json:"dutyHrs"`

	OTIn   string `json:"otIn"`
	OTOut  string `json:"otOut"`
	OTHrs  string `json:"otHrs"`
	Reason string `json:"reason"`

	IsSD    bool    `json:"isSD"`
	RawDuty float64 `json:"rawDuty"`
	RawOT   float64 `json:"rawOT"`

	dutyMinutes int
	otMinutes   int
}

// ProcessDay computes the ledger entry of one calendar day. prevDayWasNight
// is the carry from the previous day; the returned flag is the carry for
// the next one.
func ProcessDay(date time.Time, rec DayRecord, prevDayWasNight bool) (DayResult, bool) {
	res := DayResult{
		Date:    DateKey(date),
		Weekday: date.Weekday().String()[:3],
	}

	isSleepingDay := prevDayWasNight
	res.IsSD = isSleepingDay

	active := effectiveShifts(rec.Shifts, isSleepingDay)

	// после конвертации голых M/E/DN не остаётся, метка SD не перетирается
	if isSleepingDay && !keepsOwnLabel(rec.Type) {
		res.DutyIn = string(SleepingDay)
	}

	if code, ok := firstOf(active, regularCodes); ok {
		t := defaultTimes[code]
		minutes, _ := minutesBetween(t.Start, t.End)

		res.DutyIn = t.Start
		res.DutyOut = t.End
		res.DutyHrs = hoursLabel(minutes)
		if minutes > 0 {
			res.dutyMinutes += minutes
		}
	}

	if code, ok := firstOf(active, overtimeCodes); ok {
		start, end := overtimeClock(code, rec)
		minutes, _ := minutesBetween(start, end)

		res.OTIn = start
		res.OTOut = end
		res.OTHrs = hoursLabel(minutes)
		res.Reason = OvertimeReason
		if minutes > 0 {
			res.otMinutes += minutes
		}
	}

	if len(active) == 0 {
		switch rec.Type {
		case CasualLeave, VacationLeave, PHLeave:
			res.DutyIn = string(rec.Type)
			res.DutyHrs = hoursLabel(leaveMinutes)
			res.dutyMinutes += leaveMinutes
		case PublicHoliday, DayOff:
			res.DutyIn = string(rec.Type)
		}
	}

	res.RawDuty = minutesToHours(res.dutyMinutes)
	res.RawOT = minutesToHours(res.otMinutes)

	// следующий день - SD только после настоящей DN, OTN не считается
	return res, rec.Has(DutyNight)
}

// effectiveShifts applies the overtime conversion rules to a copy of the
// logged codes.
func effectiveShifts(shifts []ShiftCode, isSleepingDay bool) []ShiftCode {
	active := slices.Clone(shifts)

	if isSleepingDay {
		for i, code := range active {
			if conv, ok := sleepingDayConversion[code]; ok {
				active[i] = conv
			}
		}
		return active
	}

	switch {
	case slices.Contains(active, DutyNight):
		replace(active, Morning, OTMorning)
		replace(active, Evening, OTEvening)
	case slices.Contains(active, Morning) && slices.Contains(active, Evening):
		replace(active, Evening, OTEvening)
	}

	return active
}

func replace(codes []ShiftCode, from, to ShiftCode) {
	for i := range codes {
		if codes[i] == from {
			codes[i] = to
		}
	}
}

func firstOf(active []ShiftCode, priority []ShiftCode) (ShiftCode, bool) {
	for _, code := range priority {
		if slices.Contains(active, code) {
			return code, true
		}
	}
	return "", false
}

func keepsOwnLabel(t DayType) bool {
	switch t {
	case CasualLeave, VacationLeave, PublicHoliday, DayOff:
		return true
	}
	return false
}

func overtimeClock(code ShiftCode, rec DayRecord) (string, string) {
	t := defaultTimes[code]
	start, end := t.Start, t.End

	if s := rec.CustomStartTimes[code]; s != "" {
		start = s
	}
	if e := rec.CustomEndTimes[code]; e != "" {
		end = e
	}

	return start, end
}

// HoursBetween returns the decimal hours from start to end, wrapping past
// midnight when end is earlier than start. Unparsable clocks give zero.
func HoursBetween(start, end string) float64 {
	minutes, _ := minutesBetween(start, end)
	return minutesToHours(minutes)
}

func minutesBetween(start, end string) (int, bool) {
	s, ok := ParseClock(start)
	if !ok {
		return 0, false
	}
	e, ok := ParseClock(end)
	if !ok {
		return 0, false
	}

	if e < s {
		e += minutesInDay
	}

	return e - s, true
}

// FormatHours renders whole hours without decimals and fractional hours
// with one decimal place.
func FormatHours(hours float64) string {
	return decimal.NewFromFloat(hours).Round(1).String()
}

func hoursLabel(minutes int) string {
	return formatMinutes(minutes) + "H"
}

func formatMinutes(minutes int) string {
	return decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(1).
		String()
}

func minutesToHours(minutes int) float64 {
	return decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(2).
		InexactFloat64()
}
