package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lunadocs/internal/logger"
	"lunadocs/internal/models"
	"lunadocs/internal/repository"

	"go.uber.org/zap"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// TransferService moves whole documentation sets in and out of the store.
type TransferService interface {
	Export(ctx context.Context) (*models.ExportDocument, error)
	Import(ctx context.Context, req models.ImportRequest) (*models.ImportResult, error)
}

type transferService struct {
	sections SectionService
	now      func() time.Time
}

func NewTransferService(sections SectionService) TransferService {
	return &transferService{sections: sections, now: time.Now}
}

// ExportFileName is the download name of an export taken at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("lunaby-docs-export-%d.json", t.UnixMilli())
}

func (s *transferService) Export(ctx context.Context) (*models.ExportDocument, error) {
	list, err := s.sections.List(ctx)
	if err != nil {
		return nil, err
	}
	doc := &models.ExportDocument{
		Version:    models.ExportVersion,
		ExportedAt: s.now().UTC().Format(isoMillis),
		Sections:   make([]models.ExportSection, 0, len(list)),
	}
	for _, sec := range list {
		doc.Sections = append(doc.Sections, sec.Export())
	}
	logger.WithCtx(ctx).Info("sections exported", zap.Int("count", len(doc.Sections)))
	return doc, nil
}

// Import creates every record it can. Records that fail are logged and
// counted; they never abort the run.
func (s *transferService) Import(ctx context.Context, req models.ImportRequest) (*models.ImportResult, error) {
	log := logger.WithCtx(ctx)
	if req.Sections == nil {
		return nil, fmt.Errorf("%w: sections must be an array", ErrValidation)
	}
	if s.sections.Status(ctx).ReadOnly {
		return nil, repository.ErrReadOnly
	}

	res := &models.ImportResult{}
	if req.ReplaceAll {
		existing, err := s.sections.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, sec := range existing {
			if err := s.sections.Delete(ctx, sec.ID); err != nil {
				log.Error("import: delete existing section", zap.Int64("id", sec.ID), zap.Error(err))
				return nil, err
			}
			res.Deleted++
		}
	}

	for i, raw := range req.Sections {
		var rec models.ImportSection
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Warn("import: bad record", zap.Int("index", i), zap.Error(err))
			res.Failed++
			continue
		}
		if _, err := s.sections.Create(ctx, rec.CreateRequest()); err != nil {
			log.Warn("import: section skipped", zap.Int("index", i), zap.String("title", rec.Title), zap.Error(err))
			res.Failed++
			continue
		}
		res.Imported++
	}

	res.Success = true
	res.Message = fmt.Sprintf("Successfully imported %d sections", res.Imported)
	log.Info("sections imported",
		zap.Int("imported", res.Imported),
		zap.Int("failed", res.Failed),
		zap.Int("deleted", res.Deleted),
		zap.Bool("replace_all", req.ReplaceAll),
	)
	return res, nil
}
