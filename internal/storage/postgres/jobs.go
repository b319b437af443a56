package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/steadypay/hustle-service/internal/models"
	"github.com/steadypay/hustle-service/internal/storage"
)

// jobColumns — единый список колонок таблицы jobs,
// используемый в SELECT, чтобы гарантировать одинаковый порядок сканирования.
const jobColumns = `
provider, external_id, name, company, description, city, state, affiliate_link, category, logo_url, is_active, posted_at
`

// scanHustle сканирует одну строку вакансии в доменную модель.
func scanHustle(row pgx.Row) (*models.Hustle, error) {
	var h models.Hustle
	var provider, category string

	if err := row.Scan(
		&provider,
		&h.ExternalID,
		&h.Name,
		&h.Company,
		&h.Description,
		&h.City,
		&h.State,
		&h.AffiliateLink,
		&category,
		&h.LogoURL,
		&h.IsActive,
		&h.PostedAt,
	); err != nil {
		return nil, err
	}

	h.Provider = models.Provider(provider)
	h.Category = models.Category(category)

	return &h, nil
}

// ActiveLocalJobs возвращает все активные dave-вакансии.
// Порядок фиксирован витриной: priority ASC, затем свежие первыми.
func (s *Storage) ActiveLocalJobs(ctx context.Context) ([]models.Hustle, error) {
	const op = "storage/postgres/jobs/ActiveLocalJobs"

	q := `SELECT ` + jobColumns + `
	FROM jobs
	WHERE provider = $1 AND is_active
	ORDER BY priority ASC, posted_at DESC NULLS LAST`

	rows, err := s.db.Query(ctx, q, string(models.ProviderDave))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Hustle
	for rows.Next() {
		h, err := scanHustle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// LocalJobID резолвит id локальной строки по (provider, externalID).
// includeExpired снимает фильтр is_active (нужен сценарию unsave).
// Ошибки: storage.ErrNotFound при отсутствии строки.
func (s *Storage) LocalJobID(ctx context.Context, provider models.Provider, externalID string, includeExpired bool) (uuid.UUID, error) {
	const op = "storage/postgres/jobs/LocalJobID"

	q := `SELECT id FROM jobs WHERE provider = $1 AND external_id = $2`
	if !includeExpired {
		q += ` AND is_active`
	}

	var id uuid.UUID
	if err := s.db.QueryRow(ctx, q, string(provider), externalID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// LocalJobByKey возвращает активную вакансию по (provider, externalID).
// Ошибки: storage.ErrNotFound при отсутствии строки.
func (s *Storage) LocalJobByKey(ctx context.Context, provider models.Provider, externalID string) (*models.Hustle, error) {
	const op = "storage/postgres/jobs/LocalJobByKey"

	q := `SELECT ` + jobColumns + ` FROM jobs WHERE provider = $1 AND external_id = $2 AND is_active`

	h, err := scanHustle(s.db.QueryRow(ctx, q, string(provider), externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return h, nil
}

// FindOrCreateLocalJob находит либо создаёт строку по компаунд-ключу
// (provider, external_id, name, company, city).
//
// Реализовано одним запросом через ON CONFLICT DO UPDATE по уникальному
// индексу компаунд-ключа: гонка двух конкурентных save для одной вакансии
// разрешается в одну строку без дубликатов.
func (s *Storage) FindOrCreateLocalJob(ctx context.Context, job models.Hustle) (uuid.UUID, error) {
	const op = "storage/postgres/jobs/FindOrCreateLocalJob"

	// DO UPDATE вместо DO NOTHING, чтобы RETURNING отдавал id и для
	// уже существующей строки.
	q := `
	INSERT INTO jobs (provider, external_id, name, company, description, city, state, affiliate_link, category, logo_url, is_active, posted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (provider, external_id, name, company, city) DO UPDATE
	SET updated_at = now()
	RETURNING id`

	var id uuid.UUID
	err := s.db.QueryRow(ctx, q,
		string(job.Provider),
		job.ExternalID,
		job.Name,
		job.Company,
		job.Description,
		job.City,
		job.State,
		job.AffiliateLink,
		string(job.Category),
		job.LogoURL,
		job.IsActive,
		job.PostedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// Categories возвращает витринный каталог категорий (priority ASC).
func (s *Storage) Categories(ctx context.Context) ([]models.CategoryInfo, error) {
	const op = "storage/postgres/jobs/Categories"

	q := `SELECT category, label, image_url, priority FROM job_categories ORDER BY priority ASC, category ASC`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.CategoryInfo
	for rows.Next() {
		var info models.CategoryInfo
		var category string
		if err := rows.Scan(&category, &info.Label, &info.ImageURL, &info.Priority); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		info.Category = models.Category(category)
		result = append(result, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// JobPacks возвращает джоб-паки в витринном порядке (sort_order ASC).
func (s *Storage) JobPacks(ctx context.Context) ([]models.JobPack, error) {
	const op = "storage/postgres/jobs/JobPacks"

	q := `SELECT id, name, description, image_url, search_terms, sort_order FROM job_packs ORDER BY sort_order ASC, name ASC`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.JobPack
	for rows.Next() {
		var pack models.JobPack
		if err := rows.Scan(&pack.ID, &pack.Name, &pack.Description, &pack.ImageURL, &pack.SearchTerms, &pack.SortOrder); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, pack)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
