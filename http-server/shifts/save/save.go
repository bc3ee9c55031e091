package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"nurse-roster/http-server/shifts/reply"
	"nurse-roster/internal/roster"
	"nurse-roster/internal/storage"
)

type ShiftWriter interface {
	AddShift(ctx context.Context, req storage.AddShiftRequest) (roster.DayRecord, error)
	SetDayType(ctx context.Context, req storage.SetDayTypeRequest) (roster.DayRecord, error)
}

func AddShift(log *slog.Logger, writer ShiftWriter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.shifts.save.AddShift"

		var req storage.AddShiftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.NurseID <= 0 {
			http.Error(w, "nurse_id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		rec, err := writer.AddShift(ctx, req)
		if err != nil {
			reply.Error(w, r, log, op, err)
			return
		}

		log.Info("shift added",
			slog.Int64("nurse_id", req.NurseID),
			slog.String("date", req.Date),
			slog.String("code", string(req.Code)),
		)

		reply.OK(w, r, req.Date, rec)
	}
}

func SetDayType(log *slog.Logger, writer ShiftWriter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.shifts.save.SetDayType"

		var req storage.SetDayTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.NurseID <= 0 {
			http.Error(w, "nurse_id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		rec, err := writer.SetDayType(ctx, req)
		if err != nil {
			reply.Error(w, r, log, op, err)
			return
		}

		reply.OK(w, r, req.Date, rec)
	}
}
