package services

import (
	"context"
	"html/template"

	"lunadocs/internal/logger"
	"lunadocs/internal/models"
	"lunadocs/internal/render"

	"go.uber.org/zap"
)

// Preview is the admin editor's live view of unsaved content.
type Preview struct {
	Blocks []render.Block `json:"blocks"`
	HTML   string         `json:"html"`
	Errors []string       `json:"errors"`
}

// RenderedSection is one section ready for the public page.
type RenderedSection struct {
	Slug  string
	Title string
	HTML  template.HTML
}

type RenderService struct {
	html *render.HTMLRenderer
}

func NewRenderService() *RenderService {
	return &RenderService{html: render.NewHTMLRenderer()}
}

// Blocks renders a section body and logs any component that was dropped.
func (s *RenderService) Blocks(ctx context.Context, sec *models.Section) render.Document {
	doc := render.Render(sec.Body())
	s.logErrors(ctx, sec.Slug, doc)
	return doc
}

func (s *RenderService) Preview(ctx context.Context, content string) (*Preview, error) {
	doc := render.Render(content)
	s.logErrors(ctx, "preview", doc)

	html, err := s.html.Blocks(doc.Blocks)
	if err != nil {
		logger.WithCtx(ctx).Error("preview html", zap.Error(err))
		return nil, err
	}
	return &Preview{Blocks: doc.Blocks, HTML: string(html), Errors: doc.ErrorStrings()}, nil
}

// Page renders every section in order. A section whose template fails is
// left out rather than breaking the page.
func (s *RenderService) Page(ctx context.Context, sections []*models.Section) []RenderedSection {
	log := logger.WithCtx(ctx)
	out := make([]RenderedSection, 0, len(sections))
	for _, sec := range sections {
		html, doc, err := s.html.Section(sec.Slug, sec.Body())
		s.logErrors(ctx, sec.Slug, doc)
		if err != nil {
			log.Error("render section", zap.String("slug", sec.Slug), zap.Error(err))
			continue
		}
		out = append(out, RenderedSection{Slug: sec.Slug, Title: sec.Title, HTML: html})
	}
	return out
}

func (s *RenderService) logErrors(ctx context.Context, where string, doc render.Document) {
	if len(doc.Errors) == 0 {
		return
	}
	log := logger.WithCtx(ctx)
	for _, e := range doc.Errors {
		log.Warn("component skipped",
			zap.String("section", where),
			zap.Int("line", e.Line),
			zap.String("component", e.Component),
			zap.Error(e.Err),
		)
	}
}
