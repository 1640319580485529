package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/esg-source-catalog/internal/entity"
)

const schema = `
	CREATE TABLE IF NOT EXISTS esg_sources (
		name               TEXT PRIMARY KEY,
		url                TEXT NOT NULL,
		region             TEXT NOT NULL,
		category           TEXT NOT NULL,
		scrapability       TEXT NOT NULL,
		notes              TEXT NOT NULL,
		catalog_updated_at TEXT,
		synced_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

const upsertSourceQuery = `
	INSERT INTO esg_sources (name, url, region, category, scrapability, notes, catalog_updated_at, synced_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	ON CONFLICT (name) DO UPDATE SET
		url = EXCLUDED.url,
		region = EXCLUDED.region,
		category = EXCLUDED.category,
		scrapability = EXCLUDED.scrapability,
		notes = EXCLUDED.notes,
		catalog_updated_at = EXCLUDED.catalog_updated_at,
		synced_at = EXCLUDED.synced_at;
`

// SourceRepoImpl provides a concrete implementation for the SourceMirrorRepository interface using PostgreSQL.
type SourceRepoImpl struct {
	db *pgxpool.Pool
}

// NewSourceRepo creates a new instance of SourceRepoImpl.
func NewSourceRepo(db *pgxpool.Pool) *SourceRepoImpl {
	return &SourceRepoImpl{db: db}
}

// EnsureSchema creates the esg_sources table if it does not exist.
func (r *SourceRepoImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, schema)
	return err
}

// UpsertAll writes every source of doc within a single transaction.
// Rows for names no longer in doc are left in place.
func (r *SourceRepoImpl) UpsertAll(ctx context.Context, doc *entity.Document) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, s := range doc.Sources {
		batch.Queue(upsertSourceQuery,
			s.Name,
			s.URL,
			s.Region,
			s.Category,
			s.Scrapability,
			s.Notes,
			doc.UpdatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert sources: %w", err)
	}

	return tx.Commit(ctx)
}

// Count returns the number of mirrored sources.
func (r *SourceRepoImpl) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM esg_sources;`).Scan(&n)
	return n, err
}
