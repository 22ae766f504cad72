package handlers

import (
	"encoding/json"
	"net/http"

	"lunadocs/internal/logger"
	"lunadocs/internal/models"
	"lunadocs/internal/services"
	helpers "lunadocs/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SectionHandler is the admin editing API.
type SectionHandler struct {
	sections services.SectionService
	render   *services.RenderService
}

func NewSectionHandler(sections services.SectionService, render *services.RenderService) *SectionHandler {
	return &SectionHandler{sections: sections, render: render}
}

// List
// @Summary      All sections
// @Description  Every section, published or not, in display order.
// @Tags         admin-sections
// @Security     CookieAuth
// @Produce      json
// @Success      200 {object} sectionsResponse
// @Failure      401 {object} helpers.Response
// @Router       /api/admin/sections [get]
func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.sections.List(r.Context())
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "failed to fetch sections")
		return
	}
	helpers.Raw(w, http.StatusOK, sectionsResponse{Sections: list})
}

// Get
// @Summary      One section
// @Tags         admin-sections
// @Security     CookieAuth
// @Produce      json
// @Param        id path string true "Section id or slug"
// @Success      200 {object} helpers.Response{data=models.Section}
// @Failure      404 {object} helpers.Response
// @Router       /api/admin/sections/{id} [get]
func (h *SectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sec, err := h.sections.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, sec)
}

// Create
// @Summary      Create a section
// @Description  Appends a section at the end of the display order.
// @Tags         admin-sections
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body body models.CreateSectionRequest true "Section"
// @Success      201 {object} helpers.Response{data=models.Section}
// @Failure      400 {object} helpers.Response
// @Failure      409 {object} helpers.Response "slug taken"
// @Failure      503 {object} helpers.Response "read-only mode"
// @Router       /api/admin/sections [post]
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("create section: bad json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	sec, err := h.sections.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, sec)
}

// Update
// @Summary      Update a section
// @Description  Partial update; absent fields keep their value.
// @Tags         admin-sections
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id   path int                 true "Section id"
// @Param        body body models.SectionPatch true "Fields to change"
// @Success      200 {object} helpers.Response{data=models.Section}
// @Failure      400 {object} helpers.Response
// @Failure      404 {object} helpers.Response
// @Failure      503 {object} helpers.Response "read-only mode"
// @Router       /api/admin/sections/{id} [put]
func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "invalid section id")
		return
	}
	var patch models.SectionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	sec, err := h.sections.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, sec)
}

// Delete
// @Summary      Delete a section
// @Tags         admin-sections
// @Security     CookieAuth
// @Produce      json
// @Param        id path int true "Section id"
// @Success      200 {object} helpers.Response
// @Failure      404 {object} helpers.Response
// @Failure      503 {object} helpers.Response "read-only mode"
// @Router       /api/admin/sections/{id} [delete]
func (h *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "invalid section id")
		return
	}
	if err := h.sections.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

type moveRequest struct {
	Direction string `json:"direction" example:"up"`
}

// Move
// @Summary      Reorder a section
// @Description  Swaps the section with its neighbour. Moving past either end does nothing.
// @Tags         admin-sections
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id   path int         true "Section id"
// @Param        body body moveRequest true "up or down"
// @Success      200 {object} helpers.Response
// @Failure      400 {object} helpers.Response
// @Failure      503 {object} helpers.Response "read-only mode"
// @Router       /api/admin/sections/{id}/move [post]
func (h *SectionHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "invalid section id")
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.sections.Move(r.Context(), id, req.Direction); err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

type previewRequest struct {
	Content string `json:"content"`
}

// Preview
// @Summary      Preview content
// @Description  Renders unsaved content to blocks and sanitised HTML.
// @Tags         admin-sections
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body body previewRequest true "Content"
// @Success      200 {object} helpers.Response{data=services.Preview}
// @Failure      400 {object} helpers.Response
// @Router       /api/admin/preview [post]
func (h *SectionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.render.Preview(r.Context(), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// Status
// @Summary      Storage status
// @Tags         admin-sections
// @Security     CookieAuth
// @Produce      json
// @Success      200 {object} helpers.Response{data=models.StorageStatus}
// @Router       /api/admin/status [get]
func (h *SectionHandler) Status(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, h.sections.Status(r.Context()))
}
