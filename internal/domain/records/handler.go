package records

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"dog-health-tracker/internal/media"
)

// Tamaño máximo aceptado para la foto del perro (antes de comprimir).
const maxAvatarBytes = 10 << 20

// ImageIngestor convierte una foto subida en la URL que se guarda en avatar_url.
type ImageIngestor interface {
	Ingest(ctx context.Context, r io.Reader) (string, error)
}

type validatable[T any] interface {
	EntityPtr[T]
	Validate() error
}

func RegisterRoutes(r chi.Router, s *Store, images ImageIngestor) {
	r.Get("/backend", backendHandler(s))

	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(s))
		dr.Post("/", createDogHandler(s))
		dr.Get("/active", activeDogHandler(s))

		dr.Route("/{dogID}", func(one chi.Router) {
			one.Get("/", getDogHandler(s))
			one.Put("/", updateDogHandler(s))
			one.Delete("/", deleteDogHandler(s))
			one.Post("/avatar", uploadAvatarHandler(s, images))

			collection(one, "/medications", s.Medications, func(mr chi.Router) {
				mr.Post("/{id}/given", giveMedicationHandler(s))
			})
			collection(one, "/vaccinations", s.Vaccinations)
			collection(one, "/weights", s.WeightLogs)
			collection(one, "/vet-visits", s.VetVisits)
			collection(one, "/food", s.FoodLogs)
			collection(one, "/health", s.HealthLogs)
			collection(one, "/therapy", s.TherapySessions)

			one.Get("/medication-logs", listMedicationLogsHandler(s))

			one.Get("/reminder-contact", getReminderContactHandler(s))
			one.Put("/reminder-contact", putReminderContactHandler(s))
		})
	})
}

type backendResponse struct {
	Backend string `json:"backend"` // remote | local
}

// backendHandler godoc
// @Summary Backend activo
// @Description Indica si las operaciones van al backend remoto (DATABASE_URL configurado) o al almacenamiento local. Se evalúa en cada request.
// @Tags records
// @Produce json
// @Success 200 {object} backendResponse
// @Router /backend [get]
func backendHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, backendResponse{Backend: s.Backend()})
	}
}

// listDogsHandler godoc
// @Summary Listar perros
// @Description Devuelve los perros en orden de creación (el primero es el perro activo).
// @Tags dogs
// @Produce json
// @Success 200 {array} Dog
// @Failure 502 {string} string "backend error"
// @Router /dogs [get]
func listDogsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogs, err := s.Dogs().List(r.Context(), "")
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dogs)
	}
}

// createDogHandler godoc
// @Summary Registrar perro
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body Dog true "Perro"
// @Success 201 {object} Dog
// @Failure 400 {string} string "invalid json / validation error"
// @Failure 502 {string} string "backend error"
// @Router /dogs [post]
func createDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Dog
		if !decode(w, r, &req) {
			return
		}
		req.Meta = Meta{}
		if err := req.Validate(); err != nil {
			writeError(w, err)
			return
		}
		dog, err := s.Dogs().Save(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dog)
	}
}

// activeDogHandler godoc
// @Summary Perro activo
// @Description El primer perro registrado. 404 si todavía no hay ninguno.
// @Tags dogs
// @Produce json
// @Success 200 {object} Dog
// @Failure 404 {string} string "not found"
// @Router /dogs/active [get]
func activeDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dog, err := s.ActiveDog(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dog)
	}
}

// getDogHandler godoc
// @Summary Perfil del perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {object} Dog
// @Failure 404 {string} string "not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dog, err := s.Dogs().Get(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dog)
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Description Reemplaza los campos editables. id y created_at no cambian aunque vengan en el body.
// @Tags dogs
// @Accept json
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param payload body Dog true "Perro"
// @Success 200 {object} Dog
// @Failure 400 {string} string "invalid json / validation error"
// @Failure 404 {string} string "not found"
// @Router /dogs/{dogID} [put]
func updateDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Dog
		if !decode(w, r, &req) {
			return
		}
		req.Meta = Meta{ID: chi.URLParam(r, "dogID")}
		if err := req.Validate(); err != nil {
			writeError(w, err)
			return
		}
		dog, err := s.Dogs().Save(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dog)
	}
}

// deleteDogHandler godoc
// @Summary Borrar perro
// @Description Borra el perro y todos sus registros (medicaciones, tomas, vacunas, pesos, visitas, comida, salud, terapias, contacto). Si falla a mitad no hay rollback.
// @Tags dogs
// @Param dogID path string true "Dog ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "backend error"
// @Router /dogs/{dogID} [delete]
func deleteDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Dogs().Delete(r.Context(), chi.URLParam(r, "dogID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadAvatarHandler godoc
// @Summary Subir foto del perro
// @Description Comprime la imagen (lado mayor 800px, JPEG 0.8). Con backend remoto la sube al bucket y guarda la URL pública; si no, guarda un data URI.
// @Tags dogs
// @Accept multipart/form-data
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param image formData file true "Imagen (JPEG, PNG, GIF, WebP)"
// @Success 200 {object} Dog
// @Failure 400 {string} string "imagen inválida"
// @Failure 404 {string} string "not found"
// @Failure 502 {string} string "upload error"
// @Router /dogs/{dogID}/avatar [post]
func uploadAvatarHandler(s *Store, images ImageIngestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dog, err := s.Dogs().Get(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
		file, _, err := r.FormFile("image")
		if err != nil {
			http.Error(w, "image file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		url, err := images.Ingest(r.Context(), file)
		if err != nil {
			if errors.Is(err, media.ErrUnsupportedImage) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		dog.AvatarURL = url
		dog, err = s.Dogs().Save(r.Context(), dog)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dog)
	}
}

// collection registra el CRUD de una tabla dependiente bajo /dogs/{dogID}.
// El dog_id siempre sale del path.
func collection[T any, P validatable[T]](r chi.Router, path string, of func() Collection[T, P], extra ...func(chi.Router)) {
	r.Route(path, func(cr chi.Router) {
		for _, fn := range extra {
			fn(cr)
		}
		cr.Get("/", listRecordsHandler(of))
		cr.Post("/", createRecordHandler(of))
		cr.Get("/{id}", getRecordHandler(of))
		cr.Put("/{id}", updateRecordHandler(of))
		cr.Delete("/{id}", deleteRecordHandler(of))
	})
}

// listRecordsHandler godoc
// @Summary Listar registros del perro
// @Description Colecciones: medications, vaccinations, weights, vet-visits, food, health, therapy. Orden y límite propios de cada tabla. from/to filtran (inclusive) sobre la columna de fecha field (por defecto la de orden); active=true deja sólo medicaciones activas.
// @Tags records
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param field query string false "Columna de fecha"
// @Param active query bool false "Sólo activas (medications)"
// @Param limit query int false "Límite (-1 = sin límite)"
// @Success 200 {array} object
// @Failure 400 {string} string "query inválida"
// @Failure 502 {string} string "backend error"
// @Router /dogs/{dogID}/medications [get]
// @Router /dogs/{dogID}/vaccinations [get]
// @Router /dogs/{dogID}/weights [get]
// @Router /dogs/{dogID}/vet-visits [get]
// @Router /dogs/{dogID}/food [get]
// @Router /dogs/{dogID}/health [get]
// @Router /dogs/{dogID}/therapy [get]
func listRecordsHandler[T any, P validatable[T]](of func() Collection[T, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery[T, P](r)
		if err != nil {
			writeError(w, err)
			return
		}
		rows, err := of().Query(r.Context(), q)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// createRecordHandler godoc
// @Summary Crear registro
// @Description Valida el body antes de tocar el store. Los números aceptan 12.5, "12.5", "" o null.
// @Tags records
// @Accept json
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 201 {object} object
// @Failure 400 {string} string "invalid json / validation error"
// @Failure 404 {string} string "dog not found"
// @Failure 502 {string} string "backend error"
// @Router /dogs/{dogID}/medications [post]
// @Router /dogs/{dogID}/vaccinations [post]
// @Router /dogs/{dogID}/weights [post]
// @Router /dogs/{dogID}/vet-visits [post]
// @Router /dogs/{dogID}/food [post]
// @Router /dogs/{dogID}/health [post]
// @Router /dogs/{dogID}/therapy [post]
func createRecordHandler[T any, P validatable[T]](of func() Collection[T, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if !decode(w, r, &req) {
			return
		}
		p := P(&req)
		*p.Identity() = Meta{}
		setOwner(p, chi.URLParam(r, "dogID"))
		if err := p.Validate(); err != nil {
			writeError(w, err)
			return
		}
		rec, err := of().Save(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// getRecordHandler godoc
// @Summary Leer registro
// @Tags records
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param id path string true "Record ID"
// @Success 200 {object} object
// @Failure 404 {string} string "not found"
// @Router /dogs/{dogID}/medications/{id} [get]
// @Router /dogs/{dogID}/vaccinations/{id} [get]
// @Router /dogs/{dogID}/weights/{id} [get]
// @Router /dogs/{dogID}/vet-visits/{id} [get]
// @Router /dogs/{dogID}/food/{id} [get]
// @Router /dogs/{dogID}/health/{id} [get]
// @Router /dogs/{dogID}/therapy/{id} [get]
func getRecordHandler[T any, P validatable[T]](of func() Collection[T, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := owned(r, of())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// updateRecordHandler godoc
// @Summary Actualizar registro
// @Description id, created_at y dog_id no cambian aunque vengan en el body.
// @Tags records
// @Accept json
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param id path string true "Record ID"
// @Success 200 {object} object
// @Failure 400 {string} string "invalid json / validation error"
// @Failure 404 {string} string "not found"
// @Router /dogs/{dogID}/medications/{id} [put]
// @Router /dogs/{dogID}/vaccinations/{id} [put]
// @Router /dogs/{dogID}/weights/{id} [put]
// @Router /dogs/{dogID}/vet-visits/{id} [put]
// @Router /dogs/{dogID}/food/{id} [put]
// @Router /dogs/{dogID}/health/{id} [put]
// @Router /dogs/{dogID}/therapy/{id} [put]
func updateRecordHandler[T any, P validatable[T]](of func() Collection[T, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if !decode(w, r, &req) {
			return
		}
		if _, err := owned(r, of()); err != nil {
			writeError(w, err)
			return
		}
		p := P(&req)
		*p.Identity() = Meta{ID: chi.URLParam(r, "id")}
		setOwner(p, chi.URLParam(r, "dogID"))
		if err := p.Validate(); err != nil {
			writeError(w, err)
			return
		}
		rec, err := of().Save(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// deleteRecordHandler godoc
// @Summary Borrar registro
// @Tags records
// @Param dogID path string true "Dog ID"
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /dogs/{dogID}/medications/{id} [delete]
// @Router /dogs/{dogID}/vaccinations/{id} [delete]
// @Router /dogs/{dogID}/weights/{id} [delete]
// @Router /dogs/{dogID}/vet-visits/{id} [delete]
// @Router /dogs/{dogID}/food/{id} [delete]
// @Router /dogs/{dogID}/health/{id} [delete]
// @Router /dogs/{dogID}/therapy/{id} [delete]
func deleteRecordHandler[T any, P validatable[T]](of func() Collection[T, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := owned(r, of()); err != nil {
			writeError(w, err)
			return
		}
		if err := of().Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type giveMedicationRequest struct {
	Notes string `json:"notes"`
}

// giveMedicationHandler godoc
// @Summary Marcar medicación como dada
// @Description Agrega una toma al historial (append-only) con given_at = ahora.
// @Tags medications
// @Accept json
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param id path string true "Medication ID"
// @Param payload body giveMedicationRequest false "Notas"
// @Success 201 {object} MedicationLog
// @Failure 404 {string} string "not found"
// @Router /dogs/{dogID}/medications/{id}/given [post]
func giveMedicationHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req giveMedicationRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}
		entry, err := s.LogMedicationGiven(r.Context(), chi.URLParam(r, "dogID"), chi.URLParam(r, "id"), req.Notes)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

// listMedicationLogsHandler godoc
// @Summary Historial de tomas
// @Description Últimas 30 tomas (given_at desc), opcionalmente de una sola medicación.
// @Tags medications
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param medication_id query string false "Medication ID"
// @Success 200 {array} MedicationLog
// @Router /dogs/{dogID}/medication-logs [get]
func listMedicationLogsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := s.MedicationLogs().Query(r.Context(), Query{
			DogID:        chi.URLParam(r, "dogID"),
			MedicationID: strings.TrimSpace(r.URL.Query().Get("medication_id")),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, logs)
	}
}

// getReminderContactHandler godoc
// @Summary Contacto de recordatorios del perro
// @Tags reminders
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {object} ReminderContact
// @Failure 404 {string} string "not found"
// @Router /dogs/{dogID}/reminder-contact [get]
func getReminderContactHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := reminderContact(r.Context(), s, chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// putReminderContactHandler godoc
// @Summary Guardar contacto de recordatorios
// @Description Crea o reemplaza el único contacto del perro. Requiere email o teléfono; los toggles omitidos quedan habilitados.
// @Tags reminders
// @Accept json
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param payload body ReminderContact true "Contacto"
// @Success 200 {object} ReminderContact
// @Failure 400 {string} string "invalid json / validation error"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/reminder-contact [put]
func putReminderContactHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReminderContact
		if !decode(w, r, &req) {
			return
		}
		dogID := chi.URLParam(r, "dogID")
		req.Meta = Meta{}
		req.DogID = dogID
		if err := req.Validate(); err != nil {
			writeError(w, err)
			return
		}

		existing, err := reminderContact(r.Context(), s, dogID)
		switch {
		case err == nil:
			req.ID = existing.ID
		case !errors.Is(err, ErrNotFound):
			writeError(w, err)
			return
		}

		c, err := s.ReminderContacts().Save(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func reminderContact(ctx context.Context, s *Store, dogID string) (ReminderContact, error) {
	rows, err := s.ReminderContacts().Query(ctx, Query{DogID: dogID, Limit: 1})
	if err != nil {
		return ReminderContact{}, err
	}
	if len(rows) == 0 {
		return ReminderContact{}, ErrNotFound
	}
	return rows[0], nil
}

// owned carga {id} y verifica que pertenezca a {dogID}.
func owned[T any, P validatable[T]](r *http.Request, c Collection[T, P]) (T, error) {
	var zero T
	rec, err := c.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return zero, err
	}
	if P(&rec).OwnerID() != chi.URLParam(r, "dogID") {
		return zero, ErrNotFound
	}
	return rec, nil
}

func setOwner(e Entity, dogID string) {
	if o, ok := e.(interface{ setOwner(string) }); ok {
		o.setOwner(dogID)
	}
}

func (o *Owned) setOwner(dogID string) { o.DogID = dogID }

func parseQuery[T any, P validatable[T]](r *http.Request) (Query, error) {
	v := r.URL.Query()
	q := Query{DogID: chi.URLParam(r, "dogID"), Field: SchemaOf[T, P]().Order}
	if f := strings.TrimSpace(v.Get("field")); f != "" {
		q.Field = f
	}

	var err error
	if q.From, err = ParseDate(v.Get("from")); err != nil {
		return q, err
	}
	if q.To, err = ParseDate(v.Get("to")); err != nil {
		return q, err
	}
	if err := CheckQuery[T, P](q); err != nil {
		return q, err
	}
	if raw := v.Get("active"); raw != "" {
		if q.ActiveOnly, err = strconv.ParseBool(raw); err != nil {
			return q, invalid("active must be true or false")
		}
	}
	if raw := v.Get("limit"); raw != "" {
		if q.Limit, err = strconv.Atoi(raw); err != nil {
			return q, invalid("limit must be an integer")
		}
	}
	return q, nil
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return false
		}
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError traduce los errores del store a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	var be *BackendError
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrOwnerNotFound):
		http.Error(w, "dog not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrAppendOnly):
		http.Error(w, err.Error(), http.StatusMethodNotAllowed)
	case errors.As(err, &be):
		http.Error(w, be.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
