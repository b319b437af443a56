package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/steadypay/hustle-service/internal/models"
)

// UpsertSavedJob создаёт связь (user_id, job_id) либо освежает updated_at
// существующей. Повторный save той же вакансии не плодит строк — только
// поднимает её в выдаче SavedHustles.
func (s *Storage) UpsertSavedJob(ctx context.Context, userID, jobID uuid.UUID) error {
	const op = "storage/postgres/saved/UpsertSavedJob"

	q := `
	INSERT INTO saved_jobs (user_id, job_id, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (user_id, job_id) DO UPDATE
	SET updated_at = now()`

	if _, err := s.db.Exec(ctx, q, userID, jobID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteSavedJob удаляет связь. Нулевой rows affected — не ошибка:
// unsave несохранённой вакансии специфицирован как no-op.
func (s *Storage) DeleteSavedJob(ctx context.Context, userID, jobID uuid.UUID) error {
	const op = "storage/postgres/saved/DeleteSavedJob"

	q := `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`

	if _, err := s.db.Exec(ctx, q, userID, jobID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SavedHustles возвращает сохранённые вакансии пользователя.
// Сортировка фиксирована: saved_jobs.updated_at DESC — свежесохранённые
// (в том числе пересохранённые) первыми.
func (s *Storage) SavedHustles(ctx context.Context, userID uuid.UUID) ([]models.Hustle, error) {
	const op = "storage/postgres/saved/SavedHustles"

	q := `
	SELECT ` + jobColumns + `
	FROM saved_jobs sj
	JOIN jobs ON jobs.id = sj.job_id
	WHERE sj.user_id = $1
	ORDER BY sj.updated_at DESC`

	rows, err := s.db.Query(ctx, q, userID)
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
