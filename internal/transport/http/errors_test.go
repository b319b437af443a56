package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/steadypay/hustle-service/internal/service"
	"github.com/stretchr/testify/require"
)

// Маппинг доменных сентинелей в HTTP-статусы и FE-коды.
func TestToHTTP_Mapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"empty criteria", service.ErrEmptyCriteria, http.StatusBadRequest, "empty_criteria"},
		{"invalid criteria", service.ErrInvalidCriteria, http.StatusBadRequest, "invalid_argument"},
		{"invalid identity", service.ErrInvalidIdentity, http.StatusBadRequest, "invalid_argument"},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"gateway unavailable", service.ErrGatewayUnavailable, http.StatusServiceUnavailable, "unavailable"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "internal"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
		{"nil", nil, http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.code, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Обёрнутые сентинели распознаются через errors.Is.
func TestToHTTP_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("service/search/SearchHustles: %w", service.ErrInvalidCriteria)
	status, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid_argument", resp.Error.Code)
}

// WriteError прокидывает X-Request-Id в тело ответа.
func TestWriteError_RequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/hustles", nil)
	r.Header.Set("X-Request-Id", "req-123")
	w := httptest.NewRecorder()

	WriteError(w, r, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Error.Code)
	require.Equal(t, "req-123", resp.Error.RequestID)
}
