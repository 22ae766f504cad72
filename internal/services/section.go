package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"lunadocs/internal/logger"
	"lunadocs/internal/models"
	"lunadocs/internal/repository"

	"go.uber.org/zap"
)

var ErrValidation = errors.New("validation failed")

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const (
	MoveUp   = "up"
	MoveDown = "down"
)

type SectionService interface {
	List(ctx context.Context) ([]*models.Section, error)
	ListPublished(ctx context.Context) ([]*models.Section, error)
	Get(ctx context.Context, idOrSlug string) (*models.Section, error)
	GetPublished(ctx context.Context, slug string) (*models.Section, error)
	Create(ctx context.Context, req models.CreateSectionRequest) (*models.Section, error)
	Update(ctx context.Context, id int64, patch models.SectionPatch) (*models.Section, error)
	Delete(ctx context.Context, id int64) error
	Move(ctx context.Context, id int64, direction string) error
	Search(ctx context.Context, query string) ([]models.SearchHit, error)
	Models(ctx context.Context) ([]*models.Model, error)
	Status(ctx context.Context) models.StorageStatus
}

type sectionService struct {
	store repository.SectionStore
}

func NewSectionService(store repository.SectionStore) SectionService {
	return &sectionService{store: store}
}

func (s *sectionService) List(ctx context.Context) ([]*models.Section, error) {
	list, err := s.store.GetAll(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("list sections", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *sectionService) ListPublished(ctx context.Context) ([]*models.Section, error) {
	list, err := s.store.GetPublished(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("list published sections", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// Get resolves a numeric id first, then a slug.
func (s *sectionService) Get(ctx context.Context, idOrSlug string) (*models.Section, error) {
	log := logger.WithCtx(ctx)
	key := strings.TrimSpace(idOrSlug)

	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		sec, err := s.store.GetByID(ctx, id)
		if err == nil || !errors.Is(err, repository.ErrNotFound) {
			return sec, err
		}
	}

	sec, err := s.store.GetBySlug(ctx, key)
	if err != nil {
		log.Debug("section lookup failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return sec, nil
}

// GetPublished hides unpublished sections behind ErrNotFound.
func (s *sectionService) GetPublished(ctx context.Context, slug string) (*models.Section, error) {
	sec, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !sec.IsPublished {
		return nil, repository.ErrNotFound
	}
	return sec, nil
}

func (s *sectionService) Create(ctx context.Context, req models.CreateSectionRequest) (*models.Section, error) {
	log := logger.WithCtx(ctx)
	title := strings.TrimSpace(req.Title)
	slug := strings.TrimSpace(req.Slug)
	log.Info("create section", zap.String("title", title), zap.String("slug", slug))

	if err := validateTitle(title); err != nil {
		log.Warn("create section: invalid title", zap.Error(err))
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		log.Warn("create section: invalid slug", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	in := &models.NewSection{
		Title:       title,
		Slug:        slug,
		Content:     optional(req.Content),
		Description: optional(req.Description),
		GroupName:   strings.TrimSpace(req.GroupName),
		IsSubItem:   req.IsSubItem,
		IsPublished: req.IsPublished == nil || *req.IsPublished,
	}
	if in.GroupName == "" {
		in.GroupName = models.DefaultGroup
	}

	created, err := s.store.Create(ctx, in)
	if err != nil {
		log.Error("create section", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	log.Info("section created", zap.Int64("id", created.ID), zap.Int("order_index", created.OrderIndex))
	return created, nil
}

func (s *sectionService) Update(ctx context.Context, id int64, patch models.SectionPatch) (*models.Section, error) {
	log := logger.WithCtx(ctx)
	log.Info("update section", zap.Int64("id", id))

	if patch.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if err := validateTitle(t); err != nil {
			return nil, err
		}
		patch.Title = &t
	}
	if patch.Slug != nil {
		sl := strings.TrimSpace(*patch.Slug)
		if err := validateSlug(sl); err != nil {
			return nil, err
		}
		patch.Slug = &sl
	}
	if patch.GroupName != nil && strings.TrimSpace(*patch.GroupName) == "" {
		g := models.DefaultGroup
		patch.GroupName = &g
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		log.Warn("update section", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *sectionService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)
	if err := s.store.Delete(ctx, id); err != nil {
		log.Warn("delete section", zap.Int64("id", id), zap.Error(err))
		return err
	}
	log.Info("section deleted", zap.Int64("id", id))
	return nil
}

// Move swaps a section with its neighbour in the full ordered list.
// Moving past either end is a no-op.
func (s *sectionService) Move(ctx context.Context, id int64, direction string) error {
	log := logger.WithCtx(ctx)

	step := 0
	switch direction {
	case MoveUp:
		step = -1
	case MoveDown:
		step = 1
	default:
		return fmt.Errorf("%w: direction must be %q or %q", ErrValidation, MoveUp, MoveDown)
	}

	all, err := s.store.GetAll(ctx)
	if err != nil {
		return err
	}
	pos := -1
	for i, sec := range all {
		if sec.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return repository.ErrNotFound
	}
	next := pos + step
	if next < 0 || next >= len(all) {
		log.Debug("move section: already at the edge", zap.Int64("id", id), zap.String("direction", direction))
		return nil
	}

	if err := s.store.SwapOrder(ctx, id, all[next].ID); err != nil {
		log.Warn("move section", zap.Int64("id", id), zap.Error(err))
		return err
	}
	log.Info("section moved", zap.Int64("id", id), zap.String("direction", direction))
	return nil
}

// Search matches published sections by title, description and content.
func (s *sectionService) Search(ctx context.Context, query string) ([]models.SearchHit, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, fmt.Errorf("%w: empty query", ErrValidation)
	}

	list, err := s.store.GetPublished(ctx)
	if err != nil {
		return nil, err
	}

	hits := []models.SearchHit{}
	for _, sec := range list {
		field, text := matchField(sec, q)
		if field == "" {
			continue
		}
		hits = append(hits, models.SearchHit{
			ID:        sec.ID,
			Slug:      sec.Slug,
			Title:     sec.Title,
			GroupName: sec.GroupName,
			Field:     field,
			Snippet:   snippet(text, q, 60),
		})
	}
	logger.WithCtx(ctx).Debug("search", zap.String("query", q), zap.Int("hits", len(hits)))
	return hits, nil
}

func (s *sectionService) Models(ctx context.Context) ([]*models.Model, error) {
	list, err := s.store.ListModels(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("list models", zap.Error(err))
		return nil, err
	}
	if list == nil {
		list = []*models.Model{}
	}
	return list, nil
}

func (s *sectionService) Status(ctx context.Context) models.StorageStatus {
	mode := s.store.Mode()
	return models.StorageStatus{Mode: mode, ReadOnly: mode == repository.ModeFallback}
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if utf8.RuneCountInString(title) > 255 {
		return fmt.Errorf("%w: title is longer than 255 characters", ErrValidation)
	}
	return nil
}

func validateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug is required", ErrValidation)
	}
	if !slugRe.MatchString(slug) {
		return fmt.Errorf("%w: slug must be lowercase words joined by '-'", ErrValidation)
	}
	return nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func matchField(sec *models.Section, q string) (string, string) {
	if strings.Contains(strings.ToLower(sec.Title), q) {
		return "title", sec.Title
	}
	if sec.Description != nil && strings.Contains(strings.ToLower(*sec.Description), q) {
		return "description", *sec.Description
	}
	if sec.Content != nil && strings.Contains(strings.ToLower(*sec.Content), q) {
		return "content", *sec.Content
	}
	return "", ""
}

// snippet cuts up to radius runes around the first match of q.
func snippet(text, q string, radius int) string {
	runes := []rune(text)
	lower := []rune(strings.ToLower(text))
	qr := []rune(q)

	at := -1
	for i := 0; i+len(qr) <= len(lower); i++ {
		if string(lower[i:i+len(qr)]) == q {
			at = i
			break
		}
	}
	if at < 0 || len(lower) != len(runes) {
		if len(runes) > 2*radius {
			return string(runes[:2*radius]) + "…"
		}
		return text
	}

	start, end := at-radius, at+len(qr)+radius
	prefix, suffix := "…", "…"
	if start <= 0 {
		start, prefix = 0, ""
	}
	if end >= len(runes) {
		end, suffix = len(runes), ""
	}
	return prefix + strings.Join(strings.Fields(string(runes[start:end])), " ") + suffix
}
