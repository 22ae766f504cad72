package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lunadocs/internal/logger"
	"lunadocs/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const pgSchema = `
	CREATE TABLE IF NOT EXISTS sections (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		content TEXT,
		description TEXT,
		order_index INTEGER NOT NULL DEFAULT 0,
		group_name TEXT NOT NULL DEFAULT 'General',
		is_sub_item BOOLEAN NOT NULL DEFAULT FALSE,
		is_published BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS models (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		display_name TEXT NOT NULL,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		rate_limit INTEGER NOT NULL DEFAULT 100,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_sections_slug ON sections(slug);
	CREATE INDEX IF NOT EXISTS idx_sections_order ON sections(order_index);
`

const pgSectionCols = `id, title, slug, content, description, order_index, group_name, is_sub_item, is_published, created_at, updated_at`

type pgStore struct{ db *pgxpool.Pool }

// NewPostgresStore creates the schema on pool and seeds defaults into empty tables.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (SectionStore, error) {
	s := &pgStore{db: pool}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pgStore) initSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sections`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		logger.Log.Info("seeding default sections", zap.Int("count", len(defaultSections)))
		batch := &pgx.Batch{}
		for _, d := range defaultSections {
			batch.Queue(`
				INSERT INTO sections (title, slug, description, group_name, order_index, is_sub_item, is_published)
				VALUES ($1, $2, $3, $4, $5, $6, TRUE)`,
				d.title, d.slug, d.desc, d.group, d.order, d.sub)
		}
		if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to seed sections: %w", err)
		}
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM models`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		batch := &pgx.Batch{}
		for _, m := range defaultModels {
			batch.Queue(`INSERT INTO models (name, display_name, description) VALUES ($1, $2, $3)`, m.name, m.display, m.desc)
		}
		if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to seed models: %w", err)
		}
	}
	return nil
}

func (r *pgStore) Mode() string { return ModePostgres }

func (r *pgStore) Close() error {
	r.db.Close()
	return nil
}

func (r *pgStore) GetAll(ctx context.Context) ([]*models.Section, error) {
	return r.query(ctx, `SELECT `+pgSectionCols+` FROM sections ORDER BY order_index ASC, id ASC`)
}

func (r *pgStore) GetPublished(ctx context.Context) ([]*models.Section, error) {
	return r.query(ctx, `SELECT `+pgSectionCols+` FROM sections WHERE is_published = TRUE ORDER BY order_index ASC, id ASC`)
}

func (r *pgStore) GetBySlug(ctx context.Context, slug string) (*models.Section, error) {
	return r.one(ctx, `SELECT `+pgSectionCols+` FROM sections WHERE slug = $1`, slug)
}

func (r *pgStore) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	return r.one(ctx, `SELECT `+pgSectionCols+` FROM sections WHERE id = $1`, id)
}

func (r *pgStore) Create(ctx context.Context, in *models.NewSection) (*models.Section, error) {
	const q = `
		INSERT INTO sections (title, slug, content, description, group_name, order_index, is_sub_item, is_published)
		VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(order_index), 0) + 1 FROM sections), $6, $7)
		RETURNING ` + pgSectionCols

	sec, err := scanPgSection(r.db.QueryRow(ctx, q,
		in.Title, in.Slug, nullable(in.Content), nullable(in.Description), in.GroupName, in.IsSubItem, in.IsPublished,
	))
	if err != nil {
		return nil, pgErr(err)
	}
	return sec, nil
}

func (r *pgStore) Update(ctx context.Context, id int64, patch models.SectionPatch) (*models.Section, error) {
	sets, args := buildPatch(patch, time.Now().UTC(), func(n int) string { return fmt.Sprintf("$%d", n) })
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE sections SET %s WHERE id = $%d RETURNING %s`, strings.Join(sets, ", "), len(args), pgSectionCols)

	sec, err := scanPgSection(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, pgErr(err)
	}
	return sec, nil
}

func (r *pgStore) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM sections WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgStore) SwapOrder(ctx context.Context, a, b int64) error {
	const q = `
		UPDATE sections AS s
		SET order_index = o.order_index, updated_at = NOW()
		FROM (
			SELECT $1::bigint AS id, (SELECT order_index FROM sections WHERE id = $2) AS order_index
			UNION ALL
			SELECT $2::bigint, (SELECT order_index FROM sections WHERE id = $1)
		) AS o
		WHERE s.id = o.id AND o.order_index IS NOT NULL
	`
	tag, err := r.db.Exec(ctx, q, a, b)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 2 {
		return ErrNotFound
	}
	return nil
}

func (r *pgStore) ListModels(ctx context.Context) ([]*models.Model, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, display_name, description, is_active, rate_limit, created_at
		FROM models WHERE is_active = TRUE ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Model
	for rows.Next() {
		var m models.Model
		if err := rows.Scan(&m.ID, &m.Name, &m.DisplayName, &m.Description, &m.IsActive, &m.RateLimit, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *pgStore) query(ctx context.Context, q string, args ...any) ([]*models.Section, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*models.Section, 0)
	for rows.Next() {
		sec, err := scanPgSection(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, sec)
	}
	return list, rows.Err()
}

func (r *pgStore) one(ctx context.Context, q string, args ...any) (*models.Section, error) {
	sec, err := scanPgSection(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, pgErr(err)
	}
	return sec, nil
}

func scanPgSection(row pgx.Row) (*models.Section, error) {
	var sec models.Section
	if err := row.Scan(
		&sec.ID, &sec.Title, &sec.Slug, &sec.Content, &sec.Description,
		&sec.OrderIndex, &sec.GroupName, &sec.IsSubItem, &sec.IsPublished, &sec.CreatedAt, &sec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sec, nil
}

func pgErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) && pe.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrSlugTaken, pe.Detail)
	}
	return err
}
