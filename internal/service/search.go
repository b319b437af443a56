package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/steadypay/hustle-service/internal/cache"
	"github.com/steadypay/hustle-service/internal/clients/appcast"
	"github.com/steadypay/hustle-service/internal/models"
	"github.com/steadypay/hustle-service/internal/pkg/log"
)

// DegradedSearchMessage — фиксированное пользовательское сообщение
// деградированного ответа (внешний провайдер недоступен).
const DegradedSearchMessage = "Some job results are temporarily unavailable. Please try again in a few minutes."

// SearchHustles агрегирует выдачу локального каталога и внешнего провайдера.
//
// Политика страниц нарочно асимметрична: у локального каталога нет настоящей
// пагинации, поэтому он попадает только в страницу 0; любая страница >= 1
// молча исключает локальные вакансии, даже если partner их не отсекал.
// Внешний провайдер ищется на любой странице, если partner не dave.
//
// Слияние: локальные вакансии всегда перед внешними, внутри каждого
// источника сохраняется его собственный порядок. totalPages — максимум из
// вклада локального каталога (1, если есть совпадения) и totalPages
// провайдера.
//
// Отказ шлюза (appcast.ErrUnavailable) не валит поиск: внешние результаты
// опускаются, в ответ добавляется DegradedSearchMessage. Любая другая
// ошибка внешнего вызова пробрасывается и прерывает поиск целиком.
//
// Локальная выборка и внешний вызов независимы и выполняются конкурентно.
func (s *Service) SearchHustles(ctx context.Context, c models.SearchCriteria, caller models.CallerLocation) (*models.SearchResult, error) {
	const op = "service/search/SearchHustles"

	lg := log.From(ctx).With("op", op)

	page := 0
	if c.PageSet {
		page = c.Page
	}

	searchLocal := c.Partner != models.ProviderAppcast && page == 0
	searchExternal := c.Partner != models.ProviderDave

	type externalOutcome struct {
		result *appcast.SearchResult
		err    error
	}

	var externalCh chan externalOutcome
	if searchExternal {
		params := appcastSearchParams(c, caller, s.cfg.Appcast.Defaults)
		externalCh = make(chan externalOutcome, 1)
		go func() {
			result, err := s.searchExternal(ctx, params)
			externalCh <- externalOutcome{result: result, err: err}
		}()
	}

	var local []models.Hustle
	if searchLocal {
		jobs, err := s.storage.ActiveLocalJobs(ctx)
		if err != nil {
			lg.Error("local_jobs_fetch_failed", slog.String("err", err.Error()))

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
		local = filterLocalHustles(jobs, c)
	}

	totalPages := 0
	if len(local) > 0 {
		// Локальный каталог — всегда одна непагинируемая страница.
		totalPages = 1
	}

	result := &models.SearchResult{Page: page}

	var external []models.Hustle
	if searchExternal {
		out := <-externalCh
		switch {
		case out.err == nil:
			external = make([]models.Hustle, 0, len(out.result.Jobs))
			for _, job := range out.result.Jobs {
				external = append(external, hustleFromAppcastJob(job))
			}
			if out.result.TotalPages > totalPages {
				totalPages = out.result.TotalPages
			}
		case errors.Is(out.err, appcast.ErrUnavailable):
			degradedSearches.Inc()
			lg.Warn("search_degraded",
				slog.String("err", out.err.Error()),
			)
			result.Message = DegradedSearchMessage
		default:
			lg.Error("external_search_failed", slog.String("err", out.err.Error()))

			return nil, fmt.Errorf("%s: %w", op, out.err)
		}
	}

	result.TotalPages = totalPages
	result.Hustles = append(local, external...)

	lg.Info("search_ok",
		slog.Int("page", page),
		slog.Int("total_pages", totalPages),
		slog.Int("local", len(local)),
		slog.Int("external", len(external)),
		slog.Bool("degraded", result.Message != ""),
	)

	return result, nil
}

// searchExternal ходит к провайдеру, при включённом кеше — через него.
// Кешируются только успешные ответы.
func (s *Service) searchExternal(ctx context.Context, params []appcast.Param) (*appcast.SearchResult, error) {
	key := searchCacheKey(params)

	var cached appcast.SearchResult
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := s.appcast.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, result, s.cfg.Redis.SearchTTL); err != nil {
		log.From(ctx).Warn("search_cache_set_failed", slog.String("err", err.Error()))
	}

	return result, nil
}

func searchCacheKey(params []appcast.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Key+"="+p.Value)
	}
	return cache.Key("search", parts...)
}
