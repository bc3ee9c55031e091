package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nurse-roster/http-server/params"
	"nurse-roster/http-server/shifts/reply"
	"nurse-roster/internal/roster"
)

type ShiftRemover interface {
	RemoveShift(ctx context.Context, nurseID int64, date string, code roster.ShiftCode) (roster.DayRecord, error)
	ClearDay(ctx context.Context, nurseID int64, date string) error
}

// RemoveShift handles DELETE /api/shifts?nurse_id&date&code. Without code the
// whole day is cleared.
func RemoveShift(log *slog.Logger, remover ShiftRemover, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.shifts.remove.RemoveShift"

		nurseID, err := params.NurseID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			http.Error(w, "Missing required query parameter 'date'", http.StatusBadRequest)
			return
		}
		code := roster.ShiftCode(r.URL.Query().Get("code"))

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if code == "" {
			if err := remover.ClearDay(ctx, nurseID, date); err != nil {
				reply.Error(w, r, log, op, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		rec, err := remover.RemoveShift(ctx, nurseID, date, code)
		if err != nil {
			reply.Error(w, r, log, op, err)
			return
		}

		reply.OK(w, r, date, rec)
	}
}
