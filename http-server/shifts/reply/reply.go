package reply

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"nurse-roster/internal/roster"
	"nurse-roster/internal/service/shift-entry"
	"nurse-roster/internal/storage"
)

// Response - общий ответ записи в табель: итог проверки и запись дня после изменения.
type Response struct {
	roster.Validation
	Date   string            `json:"date,omitempty"`
	Record *roster.DayRecord `json:"record,omitempty"`
}

func OK(w http.ResponseWriter, r *http.Request, date string, rec roster.DayRecord) {
	render.JSON(w, r, Response{Validation: roster.Validation{Valid: true}, Date: date, Record: &rec})
}

// Error: нарушение бизнес-правила - 422 с сообщением для UI, неизвестная медсестра - 404, остальное - 500
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	var ve *shift_entry.ValidationError
	if errors.As(err, &ve) {
		log.With(slog.String("op", op)).Info("shift rejected", slog.String("reason", ve.Message))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, Response{Validation: roster.Validation{Valid: false, Message: ve.Message}})
		return
	}

	if errors.Is(err, storage.ErrNurseNotFound) {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}

	log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to write roster day")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
