package roster

import (
	"strconv"
	"strings"
)

type ShiftCode string

const (
	Morning   ShiftCode = "M"
	Evening   ShiftCode = "E"
	DutyNight ShiftCode = "DN"

	OTMorning ShiftCode = "OTM"
	OTEvening ShiftCode = "OTE"
	OTNight   ShiftCode = "OTN"

	// SleepingDay выводится при расчёте и никогда не хранится
	SleepingDay ShiftCode = "SD"
)

type DayType string

const (
	NoType        DayType = ""
	CasualLeave   DayType = "CL"
	VacationLeave DayType = "VL"
	PublicHoliday DayType = "PH"
	PHLeave       DayType = "PH_LEAVE"
	DayOff        DayType = "DO"
)

// ShiftTime - часы начала и конца смены в формате "7H", "19H30" и т.п.
type ShiftTime struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var defaultTimes = map[ShiftCode]ShiftTime{
	Morning:   {Start: "7H", End: "13H"},
	Evening:   {Start: "13H", End: "19H"},
	DutyNight: {Start: "19H", End: "7H"},
	OTMorning: {Start: "7H", End: "13H"},
	OTEvening: {Start: "13H", End: "19H"},
	OTNight:   {Start: "19H", End: "7H"},
}

// порядок важен: берётся первый найденный код
var (
	regularCodes  = []ShiftCode{Morning, Evening, DutyNight}
	overtimeCodes = []ShiftCode{OTMorning, OTEvening, OTNight}
)

// при Sleeping Day любая обычная смена считается сверхурочной
var sleepingDayConversion = map[ShiftCode]ShiftCode{
	Morning:   OTMorning,
	Evening:   OTEvening,
	DutyNight: OTNight,
}

func DefaultTime(code ShiftCode) (ShiftTime, bool) {
	t, ok := defaultTimes[code]
	return t, ok
}

func IsNight(code ShiftCode) bool {
	return code == DutyNight || code == OTNight
}

// IsWorkCode reports whether the code may be stored in a day record.
func IsWorkCode(code ShiftCode) bool {
	_, ok := defaultTimes[code]
	return ok
}

func IsOvertime(code ShiftCode) bool {
	return code == OTMorning || code == OTEvening || code == OTNight
}

func IsDayType(t DayType) bool {
	switch t {
	case CasualLeave, VacationLeave, PublicHoliday, PHLeave, DayOff:
		return true
	}
	return false
}

// ParseClock converts a clock string into minutes after midnight.
// Accepted forms: "7H", "7H30", "07:30", "7".
func ParseClock(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	var hourPart, minPart string
	switch {
	case strings.Contains(s, ":"):
		hourPart, minPart, _ = strings.Cut(s, ":")
	case strings.Contains(s, "H"):
		hourPart, minPart, _ = strings.Cut(s, "H")
	default:
		hourPart = s
	}

	h, err := strconv.Atoi(hourPart)
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}

	m := 0
	if minPart != "" {
		m, err = strconv.Atoi(minPart)
		if err != nil || m < 0 || m > 59 {
			return 0, false
		}
	}

	if h == 24 && m != 0 {
		return 0, false
	}

	return h*60 + m, true
}
