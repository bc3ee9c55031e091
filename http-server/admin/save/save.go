package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"nurse-roster/internal/storage"
)

type NurseCreator interface {
	CreateNurse(ctx context.Context, n storage.Nurse) (int64, error)
}

type Response struct {
	ID int64 `json:"id"`
}

func SaveNurse(log *slog.Logger, creator NurseCreator, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveNurse"

		var nurse storage.Nurse
		if err := json.NewDecoder(r.Body).Decode(&nurse); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		nurse.Name = strings.TrimSpace(nurse.Name)
		nurse.EmployeeNo = strings.TrimSpace(nurse.EmployeeNo)
		if nurse.Name == "" || nurse.EmployeeNo == "" {
			http.Error(w, "name and employee_no are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		id, err := creator.CreateNurse(ctx, nurse)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				http.Error(w, "Employee number already exists", http.StatusConflict)
				return
			}
			log.Error("Ошибка добавления медсестры", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		log.Info("nurse created", slog.Int64("id", id), slog.String("employee_no", nurse.EmployeeNo))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{ID: id})
	}
}
