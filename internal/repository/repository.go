package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lunadocs/internal/models"
)

var (
	ErrNotFound  = errors.New("section not found")
	ErrReadOnly  = errors.New("database not available, running in read-only fallback mode")
	ErrSlugTaken = errors.New("slug already exists")
)

const (
	ModeSQLite   = "sqlite"
	ModePostgres = "postgres"
	ModeFallback = "fallback"
)

// SectionStore is the single read/write surface over section data.
type SectionStore interface {
	GetAll(ctx context.Context) ([]*models.Section, error)
	GetPublished(ctx context.Context) ([]*models.Section, error)
	GetBySlug(ctx context.Context, slug string) (*models.Section, error)
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	Create(ctx context.Context, in *models.NewSection) (*models.Section, error)
	Update(ctx context.Context, id int64, patch models.SectionPatch) (*models.Section, error)
	Delete(ctx context.Context, id int64) error
	// SwapOrder exchanges the order_index of two sections atomically.
	SwapOrder(ctx context.Context, a, b int64) error
	ListModels(ctx context.Context) ([]*models.Model, error)
	Mode() string
	Close() error
}

// buildPatch turns the set fields of a patch into SET fragments.
// ph renders the n-th (1-based) placeholder for the dialect.
func buildPatch(p models.SectionPatch, now time.Time, ph func(n int) string) ([]string, []any) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = %s", col, ph(len(args))))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Slug != nil {
		add("slug", *p.Slug)
	}
	if p.Content != nil {
		add("content", *p.Content)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.GroupName != nil {
		add("group_name", *p.GroupName)
	}
	if p.OrderIndex != nil {
		add("order_index", *p.OrderIndex)
	}
	if p.IsSubItem != nil {
		add("is_sub_item", *p.IsSubItem)
	}
	if p.IsPublished != nil {
		add("is_published", *p.IsPublished)
	}
	add("updated_at", now)

	return sets, args
}

func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
