package roster

import "fmt"

type Validation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func valid() Validation {
	return Validation{Valid: true}
}

func invalid(format string, args ...any) Validation {
	return Validation{Valid: false, Message: fmt.Sprintf(format, args...)}
}

// ValidateShiftAddition checks whether code may be added to the day record
// current stored under date. all is the surrounding roster; cross-day
// fatigue rules are switched off, so it is not consulted yet.
func ValidateShiftAddition(date string, code ShiftCode, current DayRecord, all ShiftsMap) Validation {
	if _, err := ParseDate(date); err != nil {
		return invalid("Invalid date %q, expected yyyy-MM-dd", date)
	}

	if !IsWorkCode(code) {
		return invalid("Unknown shift code %q", code)
	}

	if current.Type == CasualLeave {
		return invalid("Cannot add a shift on a Casual Leave (CL) day")
	}

	// повторное добавление уже записанного кода меняет только время и не считается второй ночью
	if IsNight(code) && current.HasNight() && !current.Has(code) {
		return invalid("Only one night shift (DN or OTN) is allowed per day")
	}

	return valid()
}

// ValidateDayType accepts one of the status codes, or NoType to clear it.
func ValidateDayType(t DayType) Validation {
	if t == NoType || IsDayType(t) {
		return valid()
	}
	return invalid("Unknown day type %q", t)
}
