package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"lunadocs/internal/logger"
	"lunadocs/internal/models"

	"go.uber.org/zap"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS sections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		content TEXT,
		description TEXT,
		order_index INTEGER DEFAULT 0,
		group_name TEXT DEFAULT 'General',
		is_sub_item BOOLEAN DEFAULT 0,
		is_published BOOLEAN DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS models (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL,
		display_name TEXT NOT NULL,
		description TEXT,
		is_active BOOLEAN DEFAULT 1,
		rate_limit INTEGER DEFAULT 100,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sections_slug ON sections(slug);
	CREATE INDEX IF NOT EXISTS idx_sections_order ON sections(order_index);
`

const sqliteSectionCols = `id, title, slug, content, description, order_index, group_name, is_sub_item, is_published, created_at, updated_at`

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the schema on conn and seeds defaults into empty tables.
func NewSQLiteStore(ctx context.Context, conn *sql.DB) (SectionStore, error) {
	s := &sqliteStore{db: conn}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sqliteStore) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sections`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		logger.Log.Info("seeding default sections", zap.Int("count", len(defaultSections)))
		for _, d := range defaultSections {
			if _, err := s.db.ExecContext(ctx, `
				INSERT INTO sections (title, slug, description, group_name, order_index, is_sub_item, is_published)
				VALUES (?, ?, ?, ?, ?, ?, 1)`,
				d.title, d.slug, d.desc, d.group, d.order, d.sub,
			); err != nil {
				return fmt.Errorf("failed to seed section %s: %w", d.slug, err)
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM models`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		for _, m := range defaultModels {
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO models (name, display_name, description) VALUES (?, ?, ?)`,
				m.name, m.display, m.desc,
			); err != nil {
				return fmt.Errorf("failed to seed model %s: %w", m.name, err)
			}
		}
	}
	return nil
}

func (s *sqliteStore) Mode() string { return ModeSQLite }

func (s *sqliteStore) Close() error { return s.db.Close() }

func (s *sqliteStore) GetAll(ctx context.Context) ([]*models.Section, error) {
	return s.query(ctx, `SELECT `+sqliteSectionCols+` FROM sections ORDER BY order_index ASC, id ASC`)
}

func (s *sqliteStore) GetPublished(ctx context.Context) ([]*models.Section, error) {
	return s.query(ctx, `SELECT `+sqliteSectionCols+` FROM sections WHERE is_published = 1 ORDER BY order_index ASC, id ASC`)
}

func (s *sqliteStore) GetBySlug(ctx context.Context, slug string) (*models.Section, error) {
	return s.one(ctx, `SELECT `+sqliteSectionCols+` FROM sections WHERE slug = ?`, slug)
}

func (s *sqliteStore) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	return s.one(ctx, `SELECT `+sqliteSectionCols+` FROM sections WHERE id = ?`, id)
}

func (s *sqliteStore) Create(ctx context.Context, in *models.NewSection) (*models.Section, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var maxOrder int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(order_index), 0) FROM sections`).Scan(&maxOrder); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO sections (title, slug, content, description, group_name, order_index, is_sub_item, is_published)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Slug, nullable(in.Content), nullable(in.Description), in.GroupName, maxOrder+1, in.IsSubItem, in.IsPublished,
	)
	if err != nil {
		return nil, sqliteErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *sqliteStore) Update(ctx context.Context, id int64, patch models.SectionPatch) (*models.Section, error) {
	sets, args := buildPatch(patch, time.Now().UTC(), func(int) string { return "?" })
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, `UPDATE sections SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, sqliteErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *sqliteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) SwapOrder(ctx context.Context, a, b int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var orderA, orderB int
	if err := tx.QueryRowContext(ctx, `SELECT order_index FROM sections WHERE id = ?`, a).Scan(&orderA); err != nil {
		return notFound(err)
	}
	if err := tx.QueryRowContext(ctx, `SELECT order_index FROM sections WHERE id = ?`, b).Scan(&orderB); err != nil {
		return notFound(err)
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `UPDATE sections SET order_index = ?, updated_at = ? WHERE id = ?`, orderB, now, a); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE sections SET order_index = ?, updated_at = ? WHERE id = ?`, orderA, now, b); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *sqliteStore) ListModels(ctx context.Context) ([]*models.Model, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, display_name, description, is_active, rate_limit, created_at
		FROM models WHERE is_active = 1 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Model
	for rows.Next() {
		var m models.Model
		var created any
		if err := rows.Scan(&m.ID, &m.Name, &m.DisplayName, &m.Description, &m.IsActive, &m.RateLimit, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = scanTime(created)
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (s *sqliteStore) query(ctx context.Context, q string, args ...any) ([]*models.Section, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*models.Section, 0)
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, sec)
	}
	return list, rows.Err()
}

func (s *sqliteStore) one(ctx context.Context, q string, args ...any) (*models.Section, error) {
	sec, err := scanSection(s.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return sec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSection(row rowScanner) (*models.Section, error) {
	var sec models.Section
	var groupName sql.NullString
	var created, updated any
	if err := row.Scan(
		&sec.ID, &sec.Title, &sec.Slug, &sec.Content, &sec.Description,
		&sec.OrderIndex, &groupName, &sec.IsSubItem, &sec.IsPublished, &created, &updated,
	); err != nil {
		return nil, err
	}
	sec.GroupName = groupName.String
	if sec.GroupName == "" {
		sec.GroupName = models.DefaultGroup
	}
	sec.CreatedAt = scanTime(created)
	sec.UpdatedAt = scanTime(updated)
	return &sec, nil
}

var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

// scanTime accepts whatever the driver hands back for a DATETIME column.
func scanTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case int64:
		return time.Unix(t, 0).UTC()
	case []byte:
		return scanTime(string(t))
	case string:
		for _, layout := range sqliteTimeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func sqliteErr(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", ErrSlugTaken, err)
	}
	return err
}
