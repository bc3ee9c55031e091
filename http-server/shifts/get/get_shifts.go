package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"nurse-roster/http-server/params"
	"nurse-roster/internal/roster"
)

type ShiftsProvider interface {
	Shifts(ctx context.Context, nurseID int64, ref time.Time) (roster.Period, roster.ShiftsMap, error)
}

type Response struct {
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Shifts    roster.ShiftsMap `json:"shifts"`
}

func GetShifts(log *slog.Logger, provider ShiftsProvider, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.shifts.get.GetShifts"

		nurseID, err := params.NurseID(r)
		if err != nil {
			log.With(slog.String("op", op)).Warn("bad nurse_id", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ref, err := params.RefDate(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		period, shifts, err := provider.Shifts(ctx, nurseID, ref)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch shifts")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			StartDate: roster.DateKey(period.Start),
			EndDate:   roster.DateKey(period.End),
			Shifts:    shifts,
		})
	}
}
