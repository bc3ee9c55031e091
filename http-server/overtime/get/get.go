package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"nurse-roster/http-server/params"
	"nurse-roster/internal/service/overtime"
	"nurse-roster/internal/storage"
)

type ReportProvider interface {
	MonthlyReport(ctx context.Context, nurseID int64, ref time.Time) (*overtime.Summary, error)
}

func GetMonthlyOvertime(log *slog.Logger, reports ReportProvider, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.overtime.get.GetMonthlyOvertime"

		nurseID, err := params.NurseID(r)
		if err != nil {
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

		summary, err := reports.MonthlyReport(ctx, nurseID, ref)
		if err != nil {
			if errors.Is(err, storage.ErrNurseNotFound) {
				http.Error(w, "Nurse not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to build overtime report")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}
