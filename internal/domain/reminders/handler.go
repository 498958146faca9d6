package reminders

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, runner Runner) {
	r.Post("/reminders/run", runRemindersHandler(runner))
}

type runResponse struct {
	OK bool `json:"ok"`
	Report
	Error string `json:"error,omitempty"`
}

// runRemindersHandler godoc
// @Summary Ejecutar el job de recordatorios
// @Description Hace una pasada completa: arma el digest de cada perro y lo entrega si hay destinatario. Si REMINDER_TRIGGER_TOKEN está configurado, requiere el header Authorization: Bearer <token>.
// @Tags reminders
// @Produce json
// @Param Authorization header string false "Bearer token del trigger"
// @Success 200 {object} runResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {object} runResponse
// @Router /reminders/run [post]
func runRemindersHandler(runner Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := runner.Run(r.Context())
		if err != nil {
			writeJSON(w, http.StatusBadGateway, runResponse{OK: false, Report: report, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, runResponse{OK: true, Report: report})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
