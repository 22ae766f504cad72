package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"lunadocs/internal/config"
	"lunadocs/internal/db"
	"lunadocs/internal/logger"
	"lunadocs/internal/models"

	"go.uber.org/zap"
)

// Opener tries to bring up a database-backed store.
type Opener func(ctx context.Context) (SectionStore, error)

// NewSQLiteOpener opens the SQLite file at path and prepares its schema.
func NewSQLiteOpener(path string) Opener {
	return func(ctx context.Context) (SectionStore, error) {
		conn, err := db.NewSQLiteConnection(ctx, path)
		if err != nil {
			return nil, err
		}
		store, err := NewSQLiteStore(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, err
		}
		return store, nil
	}
}

func NewPostgresOpener(cfg *config.Config) Opener {
	return func(ctx context.Context) (SectionStore, error) {
		pool, err := db.NewPostgresConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store, err := NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	}
}

// OpenerFor picks the opener for cfg.DbDriver.
func OpenerFor(cfg *config.Config) Opener {
	if cfg.DbDriver == config.DriverPostgres {
		return NewPostgresOpener(cfg)
	}
	return NewSQLiteOpener(cfg.DbPath)
}

// FromSQL wraps an already-open SQLite handle, mostly for tests.
func FromSQL(conn *sql.DB) Opener {
	return func(ctx context.Context) (SectionStore, error) {
		return NewSQLiteStore(ctx, conn)
	}
}

// Accessor selects its backend once, on first use. If the database cannot be
// opened it switches to the static snapshot for the rest of its lifetime.
type Accessor struct {
	open         Opener
	fallbackPath string

	once    sync.Once
	backend SectionStore
}

func NewAccessor(open Opener, fallbackPath string) *Accessor {
	return &Accessor{open: open, fallbackPath: fallbackPath}
}

// NewFallbackAccessor is an Accessor already pinned to the given snapshot.
func NewFallbackAccessor(doc *models.ExportDocument) *Accessor {
	a := &Accessor{}
	a.once.Do(func() { a.backend = NewFallbackStore(doc) })
	return a
}

func (a *Accessor) store(ctx context.Context) SectionStore {
	a.once.Do(func() {
		s, err := a.tryOpen(ctx)
		if err == nil {
			logger.Log.Info("storage ready", zap.String("mode", s.Mode()))
			a.backend = s
			return
		}

		logger.Log.Warn("database initialization failed, using fallback snapshot",
			zap.String("snapshot", a.fallbackPath), zap.Error(err))

		doc, lerr := LoadSnapshot(a.fallbackPath)
		if lerr != nil {
			logger.Log.Warn("failed to load fallback snapshot", zap.Error(lerr))
		}
		a.backend = NewFallbackStore(doc)
	})
	return a.backend
}

// tryOpen converts a panic in the opener (driver load failure) into an error.
func (a *Accessor) tryOpen(ctx context.Context) (s SectionStore, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s, err = nil, fmt.Errorf("storage opener panicked: %v", rec)
		}
	}()
	if a.open == nil {
		return nil, fmt.Errorf("no storage opener configured")
	}
	return a.open(ctx)
}

func (a *Accessor) Mode() string { return a.store(context.Background()).Mode() }

func (a *Accessor) ReadOnly() bool { return a.Mode() == ModeFallback }

// GetAll never fails: read errors are logged and yield an empty list.
func (a *Accessor) GetAll(ctx context.Context) ([]*models.Section, error) {
	list, err := a.store(ctx).GetAll(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("failed to read sections", zap.Error(err))
		return []*models.Section{}, nil
	}
	return list, nil
}

func (a *Accessor) GetPublished(ctx context.Context) ([]*models.Section, error) {
	list, err := a.store(ctx).GetPublished(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("failed to read published sections", zap.Error(err))
		return []*models.Section{}, nil
	}
	return list, nil
}

func (a *Accessor) GetBySlug(ctx context.Context, slug string) (*models.Section, error) {
	return a.store(ctx).GetBySlug(ctx, slug)
}

func (a *Accessor) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	return a.store(ctx).GetByID(ctx, id)
}

func (a *Accessor) Create(ctx context.Context, in *models.NewSection) (*models.Section, error) {
	return a.store(ctx).Create(ctx, in)
}

func (a *Accessor) Update(ctx context.Context, id int64, patch models.SectionPatch) (*models.Section, error) {
	return a.store(ctx).Update(ctx, id, patch)
}

func (a *Accessor) Delete(ctx context.Context, id int64) error {
	return a.store(ctx).Delete(ctx, id)
}

func (a *Accessor) SwapOrder(ctx context.Context, x, y int64) error {
	return a.store(ctx).SwapOrder(ctx, x, y)
}

func (a *Accessor) ListModels(ctx context.Context) ([]*models.Model, error) {
	return a.store(ctx).ListModels(ctx)
}

// Close releases the backend if one was ever opened. An accessor closed before
// first use never opens the database and serves an empty snapshot afterwards.
func (a *Accessor) Close() error {
	a.once.Do(func() { a.backend = NewFallbackStore(nil) })
	return a.backend.Close()
}
