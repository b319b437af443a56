package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/steadypay/hustle-service/internal/cache"
	"github.com/steadypay/hustle-service/internal/models"
	"github.com/steadypay/hustle-service/internal/pkg/log"
)

// Categories возвращает витринный каталог категорий.
// Каталог меняется редко, поэтому закрывается кешем с CatalogTTL.
func (s *Service) Categories(ctx context.Context) ([]models.CategoryInfo, error) {
	const op = "service/catalog/Categories"

	lg := log.From(ctx).With("op", op)

	key := cache.Key("catalog", "categories")

	var cached []models.CategoryInfo
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	result, err := s.storage.Categories(ctx)
	if err != nil {
		lg.Error("storage error on Categories", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.cache.Set(ctx, key, result, s.cfg.Redis.CatalogTTL); err != nil {
		lg.Warn("catalog_cache_set_failed", slog.String("err", err.Error()))
	}

	return result, nil
}

// JobPacks возвращает курируемые подборки в витринном порядке.
func (s *Service) JobPacks(ctx context.Context) ([]models.JobPack, error) {
	const op = "service/catalog/JobPacks"

	lg := log.From(ctx).With("op", op)

	key := cache.Key("catalog", "job_packs")

	var cached []models.JobPack
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	result, err := s.storage.JobPacks(ctx)
	if err != nil {
		lg.Error("storage error on JobPacks", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.cache.Set(ctx, key, result, s.cfg.Redis.CatalogTTL); err != nil {
		lg.Warn("catalog_cache_set_failed", slog.String("err", err.Error()))
	}

	return result, nil
}
