package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/steadypay/hustle-service/internal/models"
	"github.com/steadypay/hustle-service/internal/service"
)

// HustleService — контракт сервисного слоя, нужный транспорту.
type HustleService interface {
	SearchHustles(ctx context.Context, c models.SearchCriteria, caller models.CallerLocation) (*models.SearchResult, error)
	HustleByID(ctx context.Context, hustleID string) (*models.Hustle, error)
	Categories(ctx context.Context) ([]models.CategoryInfo, error)
	JobPacks(ctx context.Context) ([]models.JobPack, error)
	SaveHustle(ctx context.Context, userID uuid.UUID, hustleID string) ([]models.Hustle, error)
	UnsaveHustle(ctx context.Context, userID uuid.UUID, hustleID string) ([]models.Hustle, error)
	SavedHustles(ctx context.Context, userID uuid.UUID) ([]models.Hustle, error)
}

// Handlers агрегирует зависимости транспортного слоя.
type Handlers struct {
	Service HustleService
}

func NewHandlers(s HustleService) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// SearchHustles — GET /hustles.
//
// Все параметры приходят строками и нормализуются на границе через
// service.ParseSearchCriteria; city/state — best-effort местоположение
// пользователя для персонализации внешнего поиска.
func (h *Handlers) SearchHustles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw := service.RawSearchParams{
		Keyword:        q.Get("keyword"),
		Category:       q.Get("category"),
		Lat:            q.Get("lat"),
		Long:           q.Get("long"),
		Radius:         q.Get("radius"),
		Partner:        q.Get("partner"),
		PostedDateSort: q.Get("postedDateSort"),
		DistanceSort:   q.Get("distanceSort"),
		Page:           q.Get("page"),
	}

	criteria, err := service.ParseSearchCriteria(raw)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	caller := models.CallerLocation{
		City:  q.Get("city"),
		State: q.Get("state"),
	}

	result, err := h.Service.SearchHustles(r.Context(), *criteria, caller)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchToResponse(result))
}

// HustleByID — GET /hustles/{id}.
func (h *Handlers) HustleByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	hustle, err := h.Service.HustleByID(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, hustleToResponse(*hustle))
}

// Categories — GET /categories.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.Categories(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesToResponse(categories))
}

// JobPacks — GET /job-packs.
func (h *Handlers) JobPacks(w http.ResponseWriter, r *http.Request) {
	packs, err := h.Service.JobPacks(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jobPacksToResponse(packs))
}

// SavedHustles — GET /users/{user_id}/saved-hustles.
func (h *Handlers) SavedHustles(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	hustles, err := h.Service.SavedHustles(r.Context(), userID)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, savedHustlesResponse{Hustles: hustlesToResponse(hustles)})
}

// SaveHustle — PUT /users/{user_id}/saved-hustles/{hustle_id}.
// Идемпотентен: повторный save той же вакансии возвращает тот же список.
func (h *Handlers) SaveHustle(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	hustles, err := h.Service.SaveHustle(r.Context(), userID, chi.URLParam(r, "hustle_id"))
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, savedHustlesResponse{Hustles: hustlesToResponse(hustles)})
}

// UnsaveHustle — DELETE /users/{user_id}/saved-hustles/{hustle_id}.
// Удаление несохранённой вакансии — no-op с обычным 200.
func (h *Handlers) UnsaveHustle(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	hustles, err := h.Service.UnsaveHustle(r.Context(), userID, chi.URLParam(r, "hustle_id"))
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, savedHustlesResponse{Hustles: hustlesToResponse(hustles)})
}

// userIDParam разбирает {user_id} из пути; при ошибке сам пишет 400.
func userIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		WriteError(w, r, service.ErrInvalidArgument)
		return uuid.Nil, false
	}
	return userID, true
}
