// storage определяет контракты доступа к БД для hustle-service.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/steadypay/hustle-service/internal/models"
)

// ErrNotFound — сущность отсутствует в хранилище.
var ErrNotFound = errors.New("not found")

// JobsStorage описывает операции над локальными строками вакансий.
//
// Локальная строка хранит как курируемые dave-вакансии, так и
// дублированные по требованию appcast-вакансии (создаются при первом
// сохранении пользователем).
type JobsStorage interface {
	// ActiveLocalJobs возвращает все активные вакансии локального провайдера.
	ActiveLocalJobs(ctx context.Context) ([]models.Hustle, error)
	// LocalJobID резолвит локальный id строки по (provider, externalID).
	// includeExpired позволяет найти и неактивную строку — нужен unsave,
	// т.к. вакансия могла истечь между save и unsave.
	// Отсутствие строки — ErrNotFound.
	LocalJobID(ctx context.Context, provider models.Provider, externalID string, includeExpired bool) (uuid.UUID, error)
	// LocalJobByKey возвращает активную вакансию по (provider, externalID).
	// Отсутствие — ErrNotFound.
	LocalJobByKey(ctx context.Context, provider models.Provider, externalID string) (*models.Hustle, error)
	// FindOrCreateLocalJob находит строку по компаунд-ключу
	// (provider, externalID, name, company, city) либо создаёт её.
	// Компаунд-матч гарантирует, что дважды притянутая внешняя вакансия
	// резолвится в одну и ту же строку без дубликатов.
	FindOrCreateLocalJob(ctx context.Context, job models.Hustle) (uuid.UUID, error)
	// Categories возвращает витринный каталог категорий.
	Categories(ctx context.Context) ([]models.CategoryInfo, error)
	// JobPacks возвращает курируемые подборки в витринном порядке.
	JobPacks(ctx context.Context) ([]models.JobPack, error)
}

// SavedJobsStorage описывает операции над сохранёнными вакансиями пользователя.
type SavedJobsStorage interface {
	// UpsertSavedJob создаёт связь (userID, jobID) либо освежает её
	// updated_at, если связь уже была. Идемпотентен по ключу:
	// конкурентные вызовы не плодят дубликатов.
	UpsertSavedJob(ctx context.Context, userID, jobID uuid.UUID) error
	// DeleteSavedJob удаляет связь; отсутствие связи — не ошибка.
	DeleteSavedJob(ctx context.Context, userID, jobID uuid.UUID) error
	// SavedHustles возвращает сохранённые вакансии пользователя,
	// отсортированные по updated_at DESC (свежесохранённые первыми).
	SavedHustles(ctx context.Context, userID uuid.UUID) ([]models.Hustle, error)
}

// Storage задаёт контракт доступа к хранилищу для hustle-сервиса.
type Storage interface {
	JobsStorage
	SavedJobsStorage
	Close()
}
