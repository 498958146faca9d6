package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "dog-health-tracker/docs"
	"dog-health-tracker/internal/domain/insights"
	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/domain/reminders"
	"dog-health-tracker/internal/domain/settings"
	"dog-health-tracker/internal/middleware"
	"dog-health-tracker/internal/platform/logger"
)

type Options struct {
	Store    *records.Store
	Settings *settings.Service
	Images   records.ImageIngestor

	// Opcional: sin runner no se expone /reminders/run.
	Reminders reminders.Runner
	// Si viene, /reminders/run exige Bearer token.
	TriggerToken string

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	records.RegisterRoutes(r, opts.Store, opts.Images)
	insights.RegisterRoutes(r, insights.NewService(opts.Store))
	settings.RegisterRoutes(r, opts.Settings)

	if opts.Reminders != nil {
		r.Group(func(gr chi.Router) {
			gr.Use(middleware.TriggerToken(opts.TriggerToken))
			reminders.RegisterRoutes(gr, opts.Reminders)
		})
	}

	return r
}
