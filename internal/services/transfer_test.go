package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lunadocs/internal/models"
	"lunadocs/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRecords(t *testing.T, records ...any) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		b, err := json.Marshal(r)
		require.NoError(t, err)
		out = append(out, b)
	}
	return out
}

func TestTransfer_ExportMatchesStore(t *testing.T) {
	sections := NewSectionService(newStore(t))
	svc := NewTransferService(sections)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ExportVersion, doc.Version)
	assert.NotEmpty(t, doc.ExportedAt)
	require.Len(t, doc.Sections, 8)
	assert.Equal(t, "introduction", doc.Sections[0].Slug)
	assert.Equal(t, 1, doc.Sections[0].OrderIndex)
}

func TestTransfer_ImportSkipsBadRecords(t *testing.T) {
	sections := NewSectionService(newStore(t))
	svc := NewTransferService(sections)
	ctx := context.Background()

	req := models.ImportRequest{Sections: rawRecords(t,
		map[string]any{"title": "Webhooks", "slug": "webhooks", "content": "# Webhooks"},
		map[string]any{"title": "Dup", "slug": "introduction"},
		map[string]any{"title": "Hidden", "slug": "hidden", "is_published": false, "group_name": "API"},
		"not an object",
	)}

	res, err := svc.Import(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, "Successfully imported 2 sections", res.Message)

	hidden, err := sections.Get(ctx, "hidden")
	require.NoError(t, err)
	assert.False(t, hidden.IsPublished)
	assert.Equal(t, "API", hidden.GroupName)

	hooks, err := sections.Get(ctx, "webhooks")
	require.NoError(t, err)
	assert.True(t, hooks.IsPublished)
	assert.Equal(t, models.DefaultGroup, hooks.GroupName)
}

func TestTransfer_ReplaceAllRoundTrip(t *testing.T) {
	src := NewTransferService(NewSectionService(newStore(t)))
	ctx := context.Background()

	doc, err := src.Export(ctx)
	require.NoError(t, err)

	dstSections := NewSectionService(newStore(t))
	_, err = dstSections.Create(ctx, models.CreateSectionRequest{Title: "Extra", Slug: "extra"})
	require.NoError(t, err)

	records := make([]any, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		records = append(records, s)
	}
	res, err := NewTransferService(dstSections).Import(ctx, models.ImportRequest{Sections: rawRecords(t, records...), ReplaceAll: true})
	require.NoError(t, err)
	assert.Equal(t, 9, res.Deleted)
	assert.Equal(t, 8, res.Imported)

	all, err := dstSections.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 8)
	for i := range all {
		assert.Equal(t, doc.Sections[i].Slug, all[i].Slug)
	}
}

func TestTransfer_ImportRejects(t *testing.T) {
	ctx := context.Background()

	_, err := NewTransferService(NewSectionService(newStore(t))).Import(ctx, models.ImportRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	ro := NewTransferService(NewSectionService(newFallbackStore()))
	_, err = ro.Import(ctx, models.ImportRequest{Sections: []json.RawMessage{}})
	assert.ErrorIs(t, err, repository.ErrReadOnly)
}

func TestExportFileName(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	assert.Equal(t, "lunaby-docs-export-1700000000123.json", ExportFileName(ts))
}

func TestTransfer_ImportRejectsNonCanonicalSlugs(t *testing.T) {
	sections := NewSectionService(newStore(t))
	svc := NewTransferService(sections)
	ctx := context.Background()

	req := models.ImportRequest{Sections: rawRecords(t,
		map[string]any{"title": "Getting Started", "slug": "Getting_Started"},
		map[string]any{"title": "Getting Started", "slug": "getting-started"},
	)}

	res, err := svc.Import(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Failed)

	_, err = sections.Get(ctx, "Getting_Started")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = sections.Get(ctx, "getting-started")
	assert.NoError(t, err)
}
