package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/settings", getSettingsHandler(svc))
	r.Put("/settings", putSettingsHandler(svc))
}

// getSettingsHandler godoc
// @Summary Leer preferencias
// @Description Devuelve las preferencias locales del dueño (email de recordatorios y toggles por categoría). Si nunca se guardaron, devuelve los valores por defecto.
// @Tags settings
// @Produce json
// @Success 200 {object} Settings
// @Failure 500 {string} string "internal error"
// @Router /settings [get]
func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// putSettingsHandler godoc
// @Summary Guardar preferencias
// @Description Reemplaza las preferencias locales. Los campos omitidos toman el valor por defecto.
// @Tags settings
// @Accept json
// @Produce json
// @Param payload body Settings true "Preferencias"
// @Success 200 {object} Settings
// @Failure 400 {string} string "invalid json / email inválido"
// @Router /settings [put]
func putSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := Defaults()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		s, err := svc.Save(r.Context(), req)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
