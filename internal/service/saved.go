package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/steadypay/hustle-service/internal/clients/appcast"
	"github.com/steadypay/hustle-service/internal/models"
	"github.com/steadypay/hustle-service/internal/pkg/log"
	"github.com/steadypay/hustle-service/internal/storage"
)

// SaveHustle сохраняет вакансию для пользователя и возвращает его полный
// актуальный список сохранённого (mutate-then-refetch-all).
//
// Реконсиляция идентичности: составной id резолвится в локальную строку;
// для внешней вакансии, ещё не известной локально, строка создаётся ровно
// один раз по компаунд-ключу (provider, externalID, name, company, city).
// Повторный save той же вакансии тем же пользователем освежает updated_at
// связи, не плодя строк.
//
// Ошибки:
//   - ErrInvalidIdentity — битый составной id (метрика и лог до отказа);
//   - ErrNotFound — dave-вакансии нет локально либо внешний провайдер
//     сообщил «нет такой вакансии» (тот же путь метрики/лога);
//   - ErrGatewayUnavailable — внешний провайдер недоступен (здесь
//     не восстанавливается, в отличие от поиска);
//   - прочее — ErrInternal.
func (s *Service) SaveHustle(ctx context.Context, userID uuid.UUID, hustleID string) ([]models.Hustle, error) {
	const op = "service/saved/SaveHustle"

	lg := log.From(ctx).With("op", op, "user_id", userID.String(), "hustle_id", hustleID)

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	provider, externalID, err := models.DecodeHustleID(hustleID)
	if err != nil {
		identityErrors.WithLabelValues(reasonInvalidID).Inc()
		lg.Warn("invalid_hustle_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidIdentity)
	}

	jobID, err := s.storage.LocalJobID(ctx, provider, externalID, false)
	switch {
	case err == nil:
		// Локальная строка уже есть.
	case errors.Is(err, storage.ErrNotFound):
		jobID, err = s.adoptExternalJob(ctx, lg, provider, externalID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	default:
		lg.Error("storage error on LocalJobID", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.storage.UpsertSavedJob(ctx, userID, jobID); err != nil {
		lg.Error("storage error on UpsertSavedJob", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	savesTotal.WithLabelValues(string(provider)).Inc()
	lg.Info("hustle_saved", slog.String("job_id", jobID.String()))

	return s.savedList(ctx, lg, op, userID)
}

// adoptExternalJob дотягивает внешнюю вакансию и создаёт (или находит)
// её локальную строку. Для dave-провайдера отсутствующая строка — сразу
// NotFound: несуществующую локальную вакансию сохранить нельзя.
func (s *Service) adoptExternalJob(ctx context.Context, lg *slog.Logger, provider models.Provider, externalID string) (uuid.UUID, error) {
	if provider == models.ProviderDave {
		identityErrors.WithLabelValues(reasonNotFound).Inc()
		lg.Warn("hustle_not_found")

		return uuid.Nil, ErrNotFound
	}

	job, err := s.appcast.JobByID(ctx, externalID)
	if err != nil {
		switch {
		case errors.Is(err, appcast.ErrJobNotFound):
			identityErrors.WithLabelValues(reasonNotFound).Inc()
			lg.Warn("hustle_not_found")

			return uuid.Nil, ErrNotFound
		case errors.Is(err, appcast.ErrUnavailable):
			lg.Error("appcast_unavailable", slog.String("err", err.Error()))

			return uuid.Nil, ErrGatewayUnavailable
		default:
			lg.Error("appcast error on JobByID", slog.String("err", err.Error()))

			return uuid.Nil, ErrInternal
		}
	}

	jobID, err := s.storage.FindOrCreateLocalJob(ctx, hustleFromAppcastJob(*job))
	if err != nil {
		lg.Error("storage error on FindOrCreateLocalJob", slog.String("err", err.Error()))

		return uuid.Nil, ErrInternal
	}

	return jobID, nil
}

// UnsaveHustle убирает вакансию из сохранённого и возвращает обновлённый
// полный список. Строка резолвится с includeExpired: вакансия могла истечь
// между save и unsave, но unsave обязан её найти. Отсутствие самой связи
// (пользователь её и не сохранял) — no-op, не ошибка.
func (s *Service) UnsaveHustle(ctx context.Context, userID uuid.UUID, hustleID string) ([]models.Hustle, error) {
	const op = "service/saved/UnsaveHustle"

	lg := log.From(ctx).With("op", op, "user_id", userID.String(), "hustle_id", hustleID)

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	provider, externalID, err := models.DecodeHustleID(hustleID)
	if err != nil {
		identityErrors.WithLabelValues(reasonInvalidID).Inc()
		lg.Warn("invalid_hustle_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidIdentity)
	}

	jobID, err := s.storage.LocalJobID(ctx, provider, externalID, true)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			identityErrors.WithLabelValues(reasonNotFound).Inc()
			lg.Warn("hustle_not_found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		lg.Error("storage error on LocalJobID", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.storage.DeleteSavedJob(ctx, userID, jobID); err != nil {
		lg.Error("storage error on DeleteSavedJob", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("hustle_unsaved", slog.String("job_id", jobID.String()))

	return s.savedList(ctx, lg, op, userID)
}

// SavedHustles возвращает сохранённые вакансии пользователя,
// свежесохранённые первыми.
func (s *Service) SavedHustles(ctx context.Context, userID uuid.UUID) ([]models.Hustle, error) {
	const op = "service/saved/SavedHustles"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return s.savedList(ctx, lg, op, userID)
}

func (s *Service) savedList(ctx context.Context, lg *slog.Logger, op string, userID uuid.UUID) ([]models.Hustle, error) {
	list, err := s.storage.SavedHustles(ctx, userID)
	if err != nil {
		lg.Error("storage error on SavedHustles", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return list, nil
}
