package get

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"nurse-roster/http-server/params"
	"nurse-roster/internal/roster"
	"nurse-roster/internal/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ClaimForm interface {
	Fields(ctx context.Context, nurseID int64, ref time.Time) (map[string]string, error)
	GenerateExcel(ctx context.Context, nurseID int64, ref time.Time) ([]byte, error)
}

func GetClaimFields(log *slog.Logger, form ClaimForm, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.claim_form.get.GetClaimFields"

		nurseID, ref, ok := parse(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		fields, err := form.Fields(ctx, nurseID, ref)
		if err != nil {
			fail(w, log, op, err)
			return
		}

		render.JSON(w, r, fields)
	}
}

func DownloadClaimExcel(log *slog.Logger, form ClaimForm, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.claim_form.get.DownloadClaimExcel"

		nurseID, ref, ok := parse(w, r)
		if !ok {
			return
		}

		// на Excel можно побольше времени
		ctx, cancel := context.WithTimeout(r.Context(), 2*timeout)
		defer cancel()

		excelBytes, err := form.GenerateExcel(ctx, nurseID, ref)
		if err != nil {
			fail(w, log, op, err)
			return
		}

		fileName := fmt.Sprintf("OT_Claim_%d_%s.xlsx", nurseID, roster.ResolvePeriod(ref).End.Format("2006-01"))

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		if _, err := w.Write(excelBytes); err != nil {
			log.Warn("failed to write excel response", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}

func parse(w http.ResponseWriter, r *http.Request) (int64, time.Time, bool) {
	nurseID, err := params.NurseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, time.Time{}, false
	}

	ref, err := params.RefDate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, time.Time{}, false
	}

	return nurseID, ref, true
}

func fail(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	if errors.Is(err, storage.ErrNurseNotFound) {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}
	log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to build claim form")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
