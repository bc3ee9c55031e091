package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"nurse-roster/internal/storage"
)

type NursesUpdater interface {
	UpdateNurses(ctx context.Context, nurses []storage.Nurse) error
}

func UpdateNurses(log *slog.Logger, updater NursesUpdater, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateNurses"

		var nurses []storage.Nurse
		if err := json.NewDecoder(r.Body).Decode(&nurses); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		for _, n := range nurses {
			if n.ID <= 0 {
				http.Error(w, "every nurse needs an id", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		err := updater.UpdateNurses(ctx, nurses)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				http.Error(w, "Employee number already exists", http.StatusConflict)
				return
			}
			log.Error("Ошибка обновления медсестёр", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
