package postgres

import (
	"context"
	"fmt"
)

// schema — идемпотентная схема хранилища. Выполняется при старте сервиса;
// уникальный индекс jobs_compound_key обслуживает ON CONFLICT
// в FindOrCreateLocalJob, uq saved_jobs — в UpsertSavedJob.
const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	provider       TEXT NOT NULL,
	external_id    TEXT NOT NULL,
	name           TEXT NOT NULL,
	company        TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	city           TEXT NOT NULL DEFAULT '',
	state          TEXT NOT NULL DEFAULT '',
	affiliate_link TEXT NOT NULL DEFAULT '',
	category       TEXT NOT NULL DEFAULT '',
	logo_url       TEXT NOT NULL DEFAULT '',
	is_active      BOOLEAN NOT NULL DEFAULT TRUE,
	priority       INT NOT NULL DEFAULT 0,
	posted_at      TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS jobs_compound_key
	ON jobs (provider, external_id, name, company, city);
CREATE INDEX IF NOT EXISTS jobs_provider_external_id
	ON jobs (provider, external_id);

CREATE TABLE IF NOT EXISTS job_categories (
	category  TEXT PRIMARY KEY,
	label     TEXT NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	priority  INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS job_packs (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	image_url    TEXT NOT NULL DEFAULT '',
	search_terms TEXT NOT NULL,
	sort_order   INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS saved_jobs (
	user_id    UUID NOT NULL,
	job_id     UUID NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, job_id)
);
`

// Bootstrap применяет схему хранилища (idempotent).
func (s *Storage) Bootstrap(ctx context.Context) error {
	const op = "storage/postgres/Bootstrap"

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
