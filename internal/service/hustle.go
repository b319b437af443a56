package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/steadypay/hustle-service/internal/clients/appcast"
	"github.com/steadypay/hustle-service/internal/models"
	"github.com/steadypay/hustle-service/internal/pkg/log"
	"github.com/steadypay/hustle-service/internal/pkg/sanitize"
	"github.com/steadypay/hustle-service/internal/storage"
)

// HustleByID возвращает вакансию по составному идентификатору.
//
// Деградации здесь нет: у точечного чтения нет осмысленного частичного
// результата, поэтому недоступность шлюза пробрасывается как
// ErrGatewayUnavailable.
func (s *Service) HustleByID(ctx context.Context, hustleID string) (*models.Hustle, error) {
	const op = "service/hustle/HustleByID"

	lg := log.From(ctx).With("op", op, "hustle_id", hustleID)

	provider, externalID, err := models.DecodeHustleID(hustleID)
	if err != nil {
		identityErrors.WithLabelValues(reasonInvalidID).Inc()
		lg.Warn("invalid_hustle_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidIdentity)
	}

	if provider == models.ProviderDave {
		hustle, err := s.storage.LocalJobByKey(ctx, provider, externalID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				identityErrors.WithLabelValues(reasonNotFound).Inc()
				lg.Warn("hustle_not_found")

				return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
			}
			lg.Error("storage error on LocalJobByKey", slog.String("err", err.Error()))

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		return hustle, nil
	}

	job, err := s.appcast.JobByID(ctx, externalID)
	if err != nil {
		switch {
		case errors.Is(err, appcast.ErrJobNotFound):
			identityErrors.WithLabelValues(reasonNotFound).Inc()
			lg.Warn("hustle_not_found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, appcast.ErrUnavailable):
			lg.Error("appcast_unavailable", slog.String("err", err.Error()))

			return nil, fmt.Errorf("%s: %w", op, ErrGatewayUnavailable)
		default:
			lg.Error("appcast error on JobByID", slog.String("err", err.Error()))

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	hustle := hustleFromAppcastJob(*job)
	return &hustle, nil
}

// hustleFromAppcastJob выражает вакансию провайдера в провайдеро-независимой
// read-модели. Тело вакансии проходит санитайзер HTML.
func hustleFromAppcastJob(job appcast.Job) models.Hustle {
	hustle := models.Hustle{
		Name:          job.Title,
		Company:       job.Company,
		Description:   sanitize.Description(job.Description),
		City:          job.City,
		State:         job.State,
		AffiliateLink: job.URL,
		Category:      models.Category(job.Category),
		ExternalID:    job.ID,
		Provider:      models.ProviderAppcast,
		IsActive:      true,
		LogoURL:       job.LogoURL,
	}

	if !job.PostedAt.IsZero() {
		postedAt := job.PostedAt
		hustle.PostedAt = &postedAt
	}

	return hustle
}
