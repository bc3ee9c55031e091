package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(codes ...ShiftCode) DayRecord {
	return DayRecord{Shifts: codes}
}

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"19H", "7H", 12},
		{"7H", "13H", 6},
		{"13H", "19H", 6},
		{"7H30", "13H", 5.5},
		{"22:00", "02:30", 4.5},
		{"7H", "7H", 0},
		{"bad", "7H", 0},
		{"7H", "25H", 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, HoursBetween(c.start, c.end), "%s -> %s", c.start, c.end)
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "6", FormatHours(6))
	assert.Equal(t, "12", FormatHours(12))
	assert.Equal(t, "6.5", FormatHours(6.5))
	assert.Equal(t, "6.3", FormatHours(6.25))
	assert.Equal(t, "0", FormatHours(0))
}

func TestProcessDay_RegularShifts(t *testing.T) {
	d := date(t, "2026-11-02")

	res, night := ProcessDay(d, rec(Morning), false)
	assert.Equal(t, "2026-11-02", res.Date)
	assert.Equal(t, "Mon", res.Weekday)
	assert.Equal(t, "7H", res.DutyIn)
	assert.Equal(t, "13H", res.DutyOut)
	assert.Equal(t, "6H", res.DutyHrs)
	assert.Equal(t, 6.0, res.RawDuty)
	assert.Zero(t, res.RawOT)
	assert.Empty(t, res.Reason)
	assert.False(t, res.IsSD)
	assert.False(t, night)

	res, night = ProcessDay(d, rec(DutyNight), false)
	assert.Equal(t, "19H", res.DutyIn)
	assert.Equal(t, "7H", res.DutyOut)
	assert.Equal(t, "12H", res.DutyHrs)
	assert.Equal(t, 12.0, res.RawDuty)
	assert.True(t, night)
}

func TestProcessDay_NightWithDayShiftTurnsDayShiftIntoOT(t *testing.T) {
	res, night := ProcessDay(date(t, "2026-11-02"), rec(Morning, DutyNight), false)

	assert.Equal(t, "19H", res.DutyIn)
	assert.Equal(t, 12.0, res.RawDuty)
	assert.Equal(t, "7H", res.OTIn)
	assert.Equal(t, "13H", res.OTOut)
	assert.Equal(t, "6H", res.OTHrs)
	assert.Equal(t, OvertimeReason, res.Reason)
	assert.Equal(t, 6.0, res.RawOT)
	assert.True(t, night)
}

func TestProcessDay_SecondRegularShiftIsOT(t *testing.T) {
	res, _ := ProcessDay(date(t, "2026-11-02"), rec(Morning, Evening), false)

	assert.Equal(t, "7H", res.DutyIn)
	assert.Equal(t, 6.0, res.RawDuty)
	assert.Equal(t, "13H", res.OTIn)
	assert.Equal(t, "19H", res.OTOut)
	assert.Equal(t, 6.0, res.RawOT)
}

// Тест: после DN утренняя смена становится сверхурочной, метка SD остаётся
func TestProcessDay_SleepingDayWithMorning(t *testing.T) {
	res, night := ProcessDay(date(t, "2026-11-03"), rec(Morning), true)

	assert.True(t, res.IsSD)
	assert.Equal(t, "SD", res.DutyIn)
	assert.Empty(t, res.DutyOut)
	assert.Empty(t, res.DutyHrs)
	assert.Zero(t, res.RawDuty)

	assert.Equal(t, "7H", res.OTIn)
	assert.Equal(t, "13H", res.OTOut)
	assert.Equal(t, "6H", res.OTHrs)
	assert.Equal(t, OvertimeReason, res.Reason)
	assert.Equal(t, 6.0, res.RawOT)
	assert.False(t, night)
}

func TestProcessDay_SleepingDayWithNightKeepsCarry(t *testing.T) {
	res, night := ProcessDay(date(t, "2026-11-03"), rec(DutyNight), true)

	assert.Equal(t, "SD", res.DutyIn)
	assert.Zero(t, res.RawDuty)
	assert.Equal(t, "19H", res.OTIn)
	assert.Equal(t, 12.0, res.RawOT)
	assert.True(t, night, "carry uses the logged DN, not the converted OTN")
}

func TestProcessDay_SleepingDayLabels(t *testing.T) {
	d := date(t, "2026-11-03")

	res, _ := ProcessDay(d, rec(), true)
	assert.Equal(t, "SD", res.DutyIn)
	assert.Zero(t, res.RawDuty)

	res, _ = ProcessDay(d, DayRecord{Type: CasualLeave}, true)
	assert.Equal(t, "CL", res.DutyIn)
	assert.Equal(t, "6H", res.DutyHrs)
	assert.Equal(t, 6.0, res.RawDuty)

	res, _ = ProcessDay(d, DayRecord{Type: PublicHoliday}, true)
	assert.Equal(t, "PH", res.DutyIn)
	assert.Zero(t, res.RawDuty)

	res, _ = ProcessDay(d, DayRecord{Type: DayOff}, true)
	assert.Equal(t, "DO", res.DutyIn)

	// PH_LEAVE не защищает метку SD, но ветка отпуска её перезаписывает
	res, _ = ProcessDay(d, DayRecord{Type: PHLeave}, true)
	assert.Equal(t, "PH_LEAVE", res.DutyIn)
	assert.Equal(t, 6.0, res.RawDuty)
}

func TestProcessDay_OTNDoesNotTriggerSleepingDay(t *testing.T) {
	_, night := ProcessDay(date(t, "2026-11-02"), rec(OTNight), false)
	require.False(t, night)

	res, _ := ProcessDay(date(t, "2026-11-03"), rec(Morning), night)
	assert.False(t, res.IsSD)
	assert.Equal(t, "7H", res.DutyIn)
	assert.Equal(t, 6.0, res.RawDuty)
	assert.Zero(t, res.RawOT)
}

func TestProcessDay_Leave(t *testing.T) {
	d := date(t, "2026-11-04")

	for _, typ := range []DayType{CasualLeave, VacationLeave, PHLeave} {
		res, _ := ProcessDay(d, DayRecord{Shifts: []ShiftCode{}, Type: typ}, false)
		assert.Equal(t, string(typ), res.DutyIn)
		assert.Equal(t, "6H", res.DutyHrs)
		assert.Equal(t, 6.0, res.RawDuty)
		assert.Zero(t, res.RawOT)
	}

	for _, typ := range []DayType{PublicHoliday, DayOff} {
		res, _ := ProcessDay(d, DayRecord{Type: typ}, false)
		assert.Equal(t, string(typ), res.DutyIn)
		assert.Empty(t, res.DutyHrs)
		assert.Zero(t, res.RawDuty)
	}
}

func TestProcessDay_LeaveIgnoredWhenShiftsLogged(t *testing.T) {
	res, _ := ProcessDay(date(t, "2026-11-04"), DayRecord{Shifts: []ShiftCode{Morning}, Type: VacationLeave}, false)

	assert.Equal(t, "7H", res.DutyIn)
	assert.Equal(t, 6.0, res.RawDuty)
}

func TestProcessDay_CustomOvertimeTimes(t *testing.T) {
	r := DayRecord{
		Shifts:           []ShiftCode{OTEvening},
		CustomStartTimes: map[ShiftCode]string{OTEvening: "14H"},
		CustomEndTimes:   map[ShiftCode]string{OTEvening: "20H30"},
	}

	res, _ := ProcessDay(date(t, "2026-11-05"), r, false)

	assert.Equal(t, "14H", res.OTIn)
	assert.Equal(t, "20H30", res.OTOut)
	assert.Equal(t, "6.5H", res.OTHrs)
	assert.Equal(t, 6.5, res.RawOT)
}

func TestProcessDay_BadDataContributesNothing(t *testing.T) {
	d := date(t, "2026-11-05")

	res, night := ProcessDay(d, rec("XX"), false)
	assert.Zero(t, res.RawDuty)
	assert.Zero(t, res.RawOT)
	assert.Empty(t, res.DutyIn)
	assert.False(t, night)

	r := DayRecord{
		Shifts:           []ShiftCode{OTMorning},
		CustomStartTimes: map[ShiftCode]string{OTMorning: "soon"},
	}
	res, _ = ProcessDay(d, r, false)
	assert.Equal(t, "soon", res.OTIn)
	assert.Equal(t, "0H", res.OTHrs)
	assert.Zero(t, res.RawOT)
}

func TestProcessDay_DoesNotMutateRecord(t *testing.T) {
	r := rec(Morning, DutyNight)

	ProcessDay(date(t, "2026-11-05"), r, true)

	assert.Equal(t, []ShiftCode{Morning, DutyNight}, r.Shifts)
}

func TestProcessDay_LegacyRoundTrip(t *testing.T) {
	d := date(t, "2026-11-05")

	fromLegacy, n1 := ProcessDay(d, Normalize([]byte(`"M"`)), false)
	fromObject, n2 := ProcessDay(d, Normalize([]byte(`{"shifts":["M"],"type":null}`)), false)

	assert.Equal(t, fromObject, fromLegacy)
	assert.Equal(t, n2, n1)
}
