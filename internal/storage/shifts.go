package storage

import "nurse-roster/internal/roster"

// AddShiftRequest - тело POST /api/shifts
type AddShiftRequest struct {
	NurseID     int64            `json:"nurse_id"`
	Date        string           `json:"date"`
	Code        roster.ShiftCode `json:"code"`
	CustomStart string           `json:"custom_start,omitempty"`
	CustomEnd   string           `json:"custom_end,omitempty"`
}

type SetDayTypeRequest struct {
	NurseID int64          `json:"nurse_id"`
	Date    string         `json:"date"`
	Type    roster.DayType `json:"type"`
}
