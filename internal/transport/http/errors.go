// Package http — REST-транспорт сервиса подработок.
//
// errors.go стандартизирует ответы об ошибках HTTP-слоя. На вход —
// доменная ошибка сервисного слоя, на выход:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинели internal/service.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/steadypay/hustle-service/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный
// ответ для фронта.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := baseFromDomain(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromDomain — базовый маппинг доменных сентинелей -> HTTP/FE-код/сообщение.
// Таблица учитывает реальные ошибки сервисного слоя:
//   - ErrEmptyCriteria (пустые критерии поиска) -> 400 с отдельным FE-кодом;
//   - ErrInvalidCriteria / ErrInvalidIdentity / ErrInvalidArgument -> 400;
//   - ErrNotFound -> 404;
//   - ErrGatewayUnavailable (внешний провайдер недоступен там, где
//     деградация невозможна) -> 503;
//   - прочее, включая ErrInternal -> 500/internal.
func baseFromDomain(err error) (int, string, string) {
	switch {
	case errors.Is(err, service.ErrEmptyCriteria):
		return http.StatusBadRequest, "empty_criteria", "at least one of keyword, category, partner or location is required"
	case errors.Is(err, service.ErrInvalidCriteria),
		errors.Is(err, service.ErrInvalidIdentity),
		errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrGatewayUnavailable):
		return http.StatusServiceUnavailable, "unavailable", "service unavailable"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
