// service содержит бизнес-логику hustle-сервиса:
// - нормализация и валидация критериев поиска;
// - агрегация выдачи локального каталога и внешнего провайдера;
// - save/unsave с реконсиляцией составного идентификатора в локальную строку;
// - витринный каталог (категории, джоб-паки).
package service

import (
	"context"
	"errors"

	"github.com/steadypay/hustle-service/internal/cache"
	"github.com/steadypay/hustle-service/internal/clients/appcast"
	"github.com/steadypay/hustle-service/internal/config"
	"github.com/steadypay/hustle-service/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные (пустой userID и т.п.).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidCriteria — нарушение пофилдовых правил критериев поиска.
	ErrInvalidCriteria = errors.New("invalid search criteria")
	// ErrEmptyCriteria — кросс-филдовое правило: не задан ни один из
	// keywords/category/partner/(lat&&long). Отдельная ошибка с отдельным
	// сообщением, чтобы фронт мог отличить её от пофилдовой.
	ErrEmptyCriteria = errors.New("at least one of keyword, category, partner or location is required")
	// ErrInvalidIdentity — составной идентификатор вакансии не декодируется.
	ErrInvalidIdentity = errors.New("invalid hustle id")
	// ErrNotFound — идентификатор корректен, но вакансии нет ни локально,
	// ни у внешнего провайдера.
	ErrNotFound = errors.New("not found")
	// ErrGatewayUnavailable — внешний провайдер недоступен. Внутри поиска
	// восстанавливается деградацией; в get/save/unsave пробрасывается.
	ErrGatewayUnavailable = errors.New("gateway unavailable")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// AppcastAPI — контракт клиента внешнего провайдера, потребляемый сервисом.
// Транспорт, ретраи и таймауты — забота реализации клиента.
type AppcastAPI interface {
	Search(ctx context.Context, params []appcast.Param) (*appcast.SearchResult, error)
	JobByID(ctx context.Context, externalID string) (*appcast.Job, error)
}

// Service — описывает бизнес-логику hustle-service.
type Service struct {
	cfg     *config.Config
	storage storage.Storage
	appcast AppcastAPI
	// cache может быть nil — кеширование тогда выключено.
	cache *cache.Cache
}

// New создает новый экземпляр Service.
func New(st storage.Storage, appcastClient AppcastAPI, c *cache.Cache, cfg *config.Config) *Service {
	return &Service{
		cfg:     cfg,
		storage: st,
		appcast: appcastClient,
		cache:   c,
	}
}
