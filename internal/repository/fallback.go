package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"lunadocs/internal/models"
)

// fallbackStore serves a static snapshot from memory and rejects every write.
type fallbackStore struct {
	sections []*models.Section
}

// LoadSnapshot reads an export document from path. A missing file yields an empty document.
func LoadSnapshot(path string) (*models.ExportDocument, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &models.ExportDocument{Version: models.ExportVersion}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var doc models.ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &doc, nil
}

// NewFallbackStore maps the snapshot to sections with 1-based positional ids,
// ordered by order_index.
func NewFallbackStore(doc *models.ExportDocument) SectionStore {
	now := time.Now().UTC()
	fs := &fallbackStore{}
	if doc == nil {
		return fs
	}

	for i, s := range doc.Sections {
		group := s.GroupName
		if group == "" {
			group = models.DefaultGroup
		}
		fs.sections = append(fs.sections, &models.Section{
			ID:          int64(i + 1),
			Title:       s.Title,
			Slug:        s.Slug,
			Content:     s.Content,
			Description: s.Description,
			OrderIndex:  s.OrderIndex,
			GroupName:   group,
			IsSubItem:   s.IsSubItem,
			IsPublished: s.IsPublished,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	sort.SliceStable(fs.sections, func(a, b int) bool {
		return fs.sections[a].OrderIndex < fs.sections[b].OrderIndex
	})
	return fs
}

func (f *fallbackStore) Mode() string { return ModeFallback }

func (f *fallbackStore) Close() error { return nil }

func (f *fallbackStore) GetAll(context.Context) ([]*models.Section, error) {
	out := make([]*models.Section, 0, len(f.sections))
	for _, s := range f.sections {
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

func (f *fallbackStore) GetPublished(context.Context) ([]*models.Section, error) {
	out := make([]*models.Section, 0, len(f.sections))
	for _, s := range f.sections {
		if s.IsPublished {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fallbackStore) GetBySlug(_ context.Context, slug string) (*models.Section, error) {
	for _, s := range f.sections {
		if s.Slug == slug {
			c := *s
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fallbackStore) GetByID(_ context.Context, id int64) (*models.Section, error) {
	for _, s := range f.sections {
		if s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fallbackStore) Create(context.Context, *models.NewSection) (*models.Section, error) {
	return nil, ErrReadOnly
}

func (f *fallbackStore) Update(context.Context, int64, models.SectionPatch) (*models.Section, error) {
	return nil, ErrReadOnly
}

func (f *fallbackStore) Delete(context.Context, int64) error { return ErrReadOnly }

func (f *fallbackStore) SwapOrder(context.Context, int64, int64) error { return ErrReadOnly }

func (f *fallbackStore) ListModels(context.Context) ([]*models.Model, error) {
	return []*models.Model{}, nil
}
