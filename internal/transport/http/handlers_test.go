package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/steadypay/hustle-service/internal/models"
	"github.com/steadypay/hustle-service/internal/service"
	"github.com/stretchr/testify/require"
)

// stubService — ручная заглушка HustleService: фиксирует входные аргументы
// и отдаёт заранее заданный ответ/ошибку.
type stubService struct {
	criteria models.SearchCriteria
	caller   models.CallerLocation
	hustleID string
	userID   uuid.UUID

	searchResult *models.SearchResult
	hustle       *models.Hustle
	hustles      []models.Hustle
	err          error
}

func (s *stubService) SearchHustles(_ context.Context, c models.SearchCriteria, caller models.CallerLocation) (*models.SearchResult, error) {
	s.criteria, s.caller = c, caller
	return s.searchResult, s.err
}

func (s *stubService) HustleByID(_ context.Context, hustleID string) (*models.Hustle, error) {
	s.hustleID = hustleID
	return s.hustle, s.err
}

func (s *stubService) Categories(context.Context) ([]models.CategoryInfo, error) {
	return []models.CategoryInfo{{Category: models.CategoryDelivery, Label: "Delivery", Priority: 1}}, s.err
}

func (s *stubService) JobPacks(context.Context) ([]models.JobPack, error) {
	return []models.JobPack{{ID: uuid.New(), Name: "Weekend gigs", SearchTerms: "weekend driver"}}, s.err
}

func (s *stubService) SaveHustle(_ context.Context, userID uuid.UUID, hustleID string) ([]models.Hustle, error) {
	s.userID, s.hustleID = userID, hustleID
	return s.hustles, s.err
}

func (s *stubService) UnsaveHustle(_ context.Context, userID uuid.UUID, hustleID string) ([]models.Hustle, error) {
	s.userID, s.hustleID = userID, hustleID
	return s.hustles, s.err
}

func (s *stubService) SavedHustles(_ context.Context, userID uuid.UUID) ([]models.Hustle, error) {
	s.userID = userID
	return s.hustles, s.err
}

func newTestRouter(svc HustleService) http.Handler {
	return NewRouter(svc, Options{})
}

func TestSearchHustles_ParsesQueryAndCallerLocation(t *testing.T) {
	stub := &stubService{searchResult: &models.SearchResult{Page: 0, TotalPages: 1}}
	router := newTestRouter(stub)

	q := url.Values{}
	q.Set("keyword", "dog walker")
	q.Set("category", "Pet Care")
	q.Set("lat", "37.77")
	q.Set("long", "-122.41")
	q.Set("radius", "25")
	q.Set("page", "0")
	q.Set("city", "San Francisco")
	q.Set("state", "CA")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hustles?"+q.Encode(), nil))

	require.Equal(t, http.StatusOK, rr.Code)

	require.Equal(t, []string{"dog", "walker"}, stub.criteria.Keywords)
	require.Equal(t, models.CategoryPetCare, stub.criteria.Category)
	require.Equal(t, 25, stub.criteria.Radius)
	require.True(t, stub.criteria.PageSet)
	require.Equal(t, 0, stub.criteria.Page)
	require.Equal(t, models.CallerLocation{City: "San Francisco", State: "CA"}, stub.caller)
}

func TestSearchHustles_EmptyCriteria(t *testing.T) {
	router := newTestRouter(&stubService{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hustles", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "empty_criteria", resp.Error.Code)
}

func TestSearchHustles_DegradedPayload(t *testing.T) {
	stub := &stubService{searchResult: &models.SearchResult{
		Page:       0,
		TotalPages: 1,
		Hustles:    []models.Hustle{{Name: "Dog Walker", Provider: models.ProviderDave, ExternalID: "dv-1"}},
		Message:    service.DegradedSearchMessage,
	}}
	router := newTestRouter(stub)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hustles?keyword=dog", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, service.DegradedSearchMessage, resp.Message)
	require.Len(t, resp.Hustles, 1)
	// Составной идентификатор собирается на границе.
	require.Equal(t, "dave|dv-1", resp.Hustles[0].ID)
}

func TestHustleByID_RoutesEncodedID(t *testing.T) {
	stub := &stubService{hustle: &models.Hustle{
		Name:       "Courier",
		Provider:   models.ProviderAppcast,
		ExternalID: "ac-77",
	}}
	router := newTestRouter(stub)

	rr := httptest.NewRecorder()
	// Разделитель в пути приходит percent-encoded; chi его декодирует.
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hustles/appcast%7Cac-77", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "appcast|ac-77", stub.hustleID)

	var resp hustleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "appcast|ac-77", resp.ID)
}

func TestHustleByID_NotFound(t *testing.T) {
	router := newTestRouter(&stubService{err: service.ErrNotFound})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hustles/dave%7Cghost", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSaveHustle_RoutesUserAndHustle(t *testing.T) {
	stub := &stubService{hustles: []models.Hustle{{Name: "Courier", Provider: models.ProviderAppcast, ExternalID: "ac-1"}}}
	router := newTestRouter(stub)

	userID := uuid.New()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/users/"+userID.String()+"/saved-hustles/appcast%7Cac-1", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, userID, stub.userID)
	require.Equal(t, "appcast|ac-1", stub.hustleID)

	var resp savedHustlesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Hustles, 1)
}

func TestSaveHustle_BadUserID(t *testing.T) {
	router := newTestRouter(&stubService{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/users/not-a-uuid/saved-hustles/dave%7Cdv-1", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUnsaveHustle_GatewayUnavailable(t *testing.T) {
	router := newTestRouter(&stubService{err: service.ErrGatewayUnavailable})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/users/"+uuid.NewString()+"/saved-hustles/appcast%7Cac-1", nil))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestCatalogRoutes(t *testing.T) {
	router := newTestRouter(&stubService{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var categories []categoryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	require.Equal(t, "Delivery", categories[0].Category)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/job-packs", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_BasePath(t *testing.T) {
	stub := &stubService{searchResult: &models.SearchResult{TotalPages: 1}}
	router := NewRouter(stub, Options{BasePath: "/api"})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/hustles?keyword=dog", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hustles?keyword=dog", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}
