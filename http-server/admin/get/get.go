package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"nurse-roster/internal/storage"
)

type NursesProvider interface {
	GetAllNurses(ctx context.Context) ([]storage.Nurse, error)
}

func GetAllNurses(log *slog.Logger, nurses NursesProvider, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetAllNurses"

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		list, err := nurses.GetAllNurses(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения списка медсестёр")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if list == nil {
			list = []storage.Nurse{}
		}

		render.JSON(w, r, list)
	}
}
