package shift_entry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"nurse-roster/internal/roster"
	"nurse-roster/internal/storage"
)

type ShiftStorage interface {
	GetDay(ctx context.Context, nurseID int64, day time.Time) (json.RawMessage, error)
	SaveDay(ctx context.Context, nurseID int64, day time.Time, rec roster.DayRecord) error
	DeleteDay(ctx context.Context, nurseID int64, day time.Time) error
}

// ValidationError несёт сообщение, которое UI показывает пользователю как есть.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func rejected(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type ShiftEntryService struct {
	storage ShiftStorage
}

func NewShiftEntryService(storage ShiftStorage) *ShiftEntryService {
	return &ShiftEntryService{storage: storage}
}

// AddShift validates and appends a shift code to the day. Adding a code that
// is already logged changes nothing but the custom clock overrides, night
// codes included.
func (s *ShiftEntryService) AddShift(ctx context.Context, req storage.AddShiftRequest) (roster.DayRecord, error) {
	const op = "service.shift_entry.AddShift"

	day, current, err := s.loadDay(ctx, req.NurseID, req.Date)
	if err != nil {
		return roster.DayRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	// правила между соседними днями отключены, валидатору хватает самого дня
	if v := roster.ValidateShiftAddition(req.Date, req.Code, current, roster.ShiftsMap{req.Date: current}); !v.Valid {
		return roster.DayRecord{}, &ValidationError{Message: v.Message}
	}

	rec := current.Clone()
	if !rec.Has(req.Code) {
		rec.Shifts = append(rec.Shifts, req.Code)
	}

	if req.CustomStart != "" || req.CustomEnd != "" {
		if !roster.IsOvertime(req.Code) {
			return roster.DayRecord{}, rejected("Custom times are only allowed for overtime shifts")
		}
		if err := setCustomTime(&rec.CustomStartTimes, req.Code, req.CustomStart); err != nil {
			return roster.DayRecord{}, err
		}
		if err := setCustomTime(&rec.CustomEndTimes, req.Code, req.CustomEnd); err != nil {
			return roster.DayRecord{}, err
		}
	}

	if err := s.storage.SaveDay(ctx, req.NurseID, day, rec); err != nil {
		return roster.DayRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

func setCustomTime(times *map[roster.ShiftCode]string, code roster.ShiftCode, clock string) error {
	if clock == "" {
		return nil
	}
	if _, ok := roster.ParseClock(clock); !ok {
		return rejected("Invalid time %q, expected e.g. 7H, 7H30 or 07:30", clock)
	}
	if *times == nil {
		*times = make(map[roster.ShiftCode]string)
	}
	(*times)[code] = clock
	return nil
}

// RemoveShift убирает код смены вместе с его пользовательским временем.
// Пустой день без типа удаляется целиком.
func (s *ShiftEntryService) RemoveShift(ctx context.Context, nurseID int64, date string, code roster.ShiftCode) (roster.DayRecord, error) {
	const op = "service.shift_entry.RemoveShift"

	day, rec, err := s.loadDay(ctx, nurseID, date)
	if err != nil {
		return roster.DayRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	rec.Shifts = slices.DeleteFunc(rec.Shifts, func(c roster.ShiftCode) bool { return c == code })
	delete(rec.CustomStartTimes, code)
	delete(rec.CustomEndTimes, code)

	if err := s.store(ctx, nurseID, day, rec); err != nil {
		return roster.DayRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

func (s *ShiftEntryService) SetDayType(ctx context.Context, req storage.SetDayTypeRequest) (roster.DayRecord, error) {
	const op = "service.shift_entry.SetDayType"

	if v := roster.ValidateDayType(req.Type); !v.Valid {
		return roster.DayRecord{}, &ValidationError{Message: v.Message}
	}

	day, rec, err := s.loadDay(ctx, req.NurseID, req.Date)
	if err != nil {
		return roster.DayRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	rec.Type = req.Type

	if err := s.store(ctx, req.NurseID, day, rec); err != nil {
		return roster.DayRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

func (s *ShiftEntryService) ClearDay(ctx context.Context, nurseID int64, date string) error {
	const op = "service.shift_entry.ClearDay"

	day, err := roster.ParseDate(date)
	if err != nil {
		return rejected("Invalid date %q, expected yyyy-MM-dd", date)
	}

	if err := s.storage.DeleteDay(ctx, nurseID, day); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ShiftEntryService) loadDay(ctx context.Context, nurseID int64, date string) (time.Time, roster.DayRecord, error) {
	day, err := roster.ParseDate(date)
	if err != nil {
		return time.Time{}, roster.DayRecord{}, rejected("Invalid date %q, expected yyyy-MM-dd", date)
	}

	raw, err := s.storage.GetDay(ctx, nurseID, day)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return day, roster.Normalize(nil), nil
		}
		return time.Time{}, roster.DayRecord{}, err
	}

	return day, roster.Normalize(raw).Clone(), nil
}

func (s *ShiftEntryService) store(ctx context.Context, nurseID int64, day time.Time, rec roster.DayRecord) error {
	if rec.IsEmpty() {
		return s.storage.DeleteDay(ctx, nurseID, day)
	}
	return s.storage.SaveDay(ctx, nurseID, day, rec)
}
