package handlers

import (
	"net/http"

	"lunadocs/internal/logger"
	"lunadocs/internal/models"
	"lunadocs/internal/services"
	helpers "lunadocs/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// DocsHandler serves the public read API.
type DocsHandler struct {
	sections services.SectionService
	nav      *services.NavigationService
	render   *services.RenderService
}

func NewDocsHandler(sections services.SectionService, nav *services.NavigationService, render *services.RenderService) *DocsHandler {
	return &DocsHandler{sections: sections, nav: nav, render: render}
}

type sectionsResponse struct {
	Sections []*models.Section `json:"sections"`
}

// List
// @Summary      Published sections
// @Description  Returns every published section in display order. Storage errors yield an empty list.
// @Tags         docs
// @Produce      json
// @Success      200 {object} sectionsResponse
// @Router       /api/docs [get]
func (h *DocsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.sections.ListPublished(r.Context())
	if err != nil || list == nil {
		list = []*models.Section{}
	}
	helpers.Raw(w, http.StatusOK, sectionsResponse{Sections: list})
}

// Navigation
// @Summary      Sidebar navigation
// @Tags         docs
// @Produce      json
// @Success      200 {object} helpers.Response{data=[]models.NavGroup}
// @Router       /api/docs/navigation [get]
func (h *DocsHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	list, err := h.sections.ListPublished(r.Context())
	if err != nil {
		list = nil
	}
	helpers.JSON(w, http.StatusOK, h.nav.Build(list))
}

type blocksResponse struct {
	Slug   string      `json:"slug"`
	Title  string      `json:"title"`
	Blocks interface{} `json:"blocks"`
}

// Blocks
// @Summary      Rendered blocks of a section
// @Description  Structured blocks (headings, paragraphs, code tabs, tables, model grids) of one published section.
// @Tags         docs
// @Produce      json
// @Param        slug path string true "Section slug"
// @Success      200 {object} helpers.Response{data=blocksResponse}
// @Failure      404 {object} helpers.Response
// @Router       /api/docs/{slug}/blocks [get]
func (h *DocsHandler) Blocks(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	sec, err := h.sections.GetPublished(r.Context(), slug)
	if err != nil {
		writeError(w, r, err)
		return
	}
	doc := h.render.Blocks(r.Context(), sec)
	logger.WithCtx(r.Context()).Debug("blocks rendered", zap.String("slug", slug), zap.Int("blocks", len(doc.Blocks)))
	helpers.JSON(w, http.StatusOK, blocksResponse{Slug: sec.Slug, Title: sec.Title, Blocks: doc.Blocks})
}

// Models
// @Summary      Active models
// @Tags         docs
// @Produce      json
// @Success      200 {object} helpers.Response{data=[]models.Model}
// @Router       /api/models [get]
func (h *DocsHandler) Models(w http.ResponseWriter, r *http.Request) {
	list, err := h.sections.Models(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}
