package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "nurse-roster/http-server/admin/get"
	saveadmin "nurse-roster/http-server/admin/save"
	upadmin "nurse-roster/http-server/admin/update"
	getclaim "nurse-roster/http-server/claim-form/get"
	getovertime "nurse-roster/http-server/overtime/get"
	getshifts "nurse-roster/http-server/shifts/get"
	removeshifts "nurse-roster/http-server/shifts/remove"
	saveshifts "nurse-roster/http-server/shifts/save"
	"nurse-roster/internal/config"
	"nurse-roster/internal/middleware/auth"
	claim_form "nurse-roster/internal/service/claim-form"
	"nurse-roster/internal/service/overtime"
	shift_entry "nurse-roster/internal/service/shift-entry"
	"nurse-roster/internal/storage/mysql"
)

type Services struct {
	Overtime   *overtime.OvertimeService
	ShiftEntry *shift_entry.ShiftEntryService
	ClaimForm  *claim_form.ClaimFormService
}

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, services Services) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// табель смен
	router.Get("/api/shifts", getshifts.GetShifts(log, services.Overtime, cfg.RequestTimeout))
	router.Post("/api/shifts", saveshifts.AddShift(log, services.ShiftEntry, cfg.RequestTimeout))
	router.Delete("/api/shifts", removeshifts.RemoveShift(log, services.ShiftEntry, cfg.RequestTimeout))
	router.Put("/api/shifts/type", saveshifts.SetDayType(log, services.ShiftEntry, cfg.RequestTimeout))

	// отчёт и форма заявки на оплату
	router.Get("/api/overtime", getovertime.GetMonthlyOvertime(log, services.Overtime, cfg.RequestTimeout))
	router.Get("/api/claim/fields", getclaim.GetClaimFields(log, services.ClaimForm, cfg.RequestTimeout))
	router.Get("/api/claim/excel", getclaim.DownloadClaimExcel(log, services.ClaimForm, cfg.RequestTimeout))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/nurses", getadmin.GetAllNurses(log, storage, cfg.RequestTimeout))
	adminRouter.Post("/nurses/save", saveadmin.SaveNurse(log, storage, cfg.RequestTimeout))
	adminRouter.Put("/nurses/update", upadmin.UpdateNurses(log, storage, cfg.RequestTimeout))

	router.Mount("/api/admin", adminRouter)

	mountFrontend(router, cfg, log)

	return router
}

// mountFrontend отдаёт собранный SPA, если папка указана в конфиге
func mountFrontend(router chi.Router, cfg config.Config, log *slog.Logger) {
	frontendDir := cfg.FrontendDir
	if frontendDir == "" {
		return
	}

	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("Папка фронтенда не найдена, статика отключена", slog.String("path", frontendDir))
		return
	}

	index := filepath.Join(frontendDir, "index.html")
	fileServer := http.FileServer(http.Dir(frontendDir))

	router.Handle("/assets/*", fileServer)

	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).Handle("/admin/*",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, index)
		}),
	)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, index)
	})
}
