package insights

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dog-health-tracker/internal/domain/records"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dogs/{dogID}/dashboard", dashboardHandler(svc))
}

// dashboardHandler godoc
// @Summary Panel del perro
// @Description Proyección calculada en cada request: alertas de vacunas (vencidas y próximas 30 días), próximo turno, último peso y tendencia, comida agrupada por día, visitas y terapias próximas/pasadas, medicaciones activas y XP.
// @Tags dashboard
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {object} Dashboard
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "backend error"
// @Router /dogs/{dogID}/dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Dashboard(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			var be *records.BackendError
			switch {
			case errors.Is(err, records.ErrNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.As(err, &be):
				http.Error(w, be.Error(), http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
