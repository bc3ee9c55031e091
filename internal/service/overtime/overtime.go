package overtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"nurse-roster/internal/roster"
	"nurse-roster/internal/storage"
)

type RosterStorage interface {
	GetNurse(ctx context.Context, id int64) (*storage.Nurse, error)
	GetShiftsInRange(ctx context.Context, nurseID int64, from, to time.Time) (map[string]json.RawMessage, error)
}

type OvertimeService struct {
	log     *slog.Logger
	storage RosterStorage
}

func NewOvertimeService(log *slog.Logger, storage RosterStorage) *OvertimeService {
	return &OvertimeService{log: log, storage: storage}
}

type Summary struct {
	Nurse *storage.Nurse `json:"nurse"`
	roster.Report
}

// MonthlyReport загружает снимок смен за отчётный период (плюс день до него,
// нужный для Sleeping Day) и прогоняет расчёт.
func (s *OvertimeService) MonthlyReport(ctx context.Context, nurseID int64, ref time.Time) (*Summary, error) {
	const op = "service.overtime.MonthlyReport"

	period := roster.ResolvePeriod(ref)

	var (
		nurse *storage.Nurse
		raw   map[string]json.RawMessage
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nurse, err = s.storage.GetNurse(gCtx, nurseID)
		if err != nil {
			return fmt.Errorf("nurse: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		raw, err = s.storage.GetShiftsInRange(gCtx, nurseID, period.Start.AddDate(0, 0, -1), period.End)
		if err != nil {
			return fmt.Errorf("shifts: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	shifts, warnings := roster.NormalizeMap(raw)

	report := roster.Aggregate(shifts, period)
	report.Warnings = append(warnings, report.Warnings...)

	for _, w := range report.Warnings {
		s.log.Warn("roster data ignored",
			slog.String("op", op),
			slog.Int64("nurse_id", nurseID),
			slog.String("date", w.Date),
			slog.String("reason", w.Message),
		)
	}

	return &Summary{Nurse: nurse, Report: report}, nil
}

// Shifts returns the normalized shifts of the reporting period containing ref.
func (s *OvertimeService) Shifts(ctx context.Context, nurseID int64, ref time.Time) (roster.Period, roster.ShiftsMap, error) {
	const op = "service.overtime.Shifts"

	period := roster.ResolvePeriod(ref)

	raw, err := s.storage.GetShiftsInRange(ctx, nurseID, period.Start, period.End)
	if err != nil {
		return roster.Period{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	shifts, _ := roster.NormalizeMap(raw)

	return period, shifts, nil
}
