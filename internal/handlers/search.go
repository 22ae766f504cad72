package handlers

import (
	"net/http"
	"strings"
	"time"

	"lunadocs/internal/logger"
	"lunadocs/internal/services"
	helpers "lunadocs/internal/utils/helpers"

	"go.uber.org/zap"
)

type SearchHandler struct {
	sections services.SectionService
}

func NewSearchHandler(sections services.SectionService) *SearchHandler {
	return &SearchHandler{sections: sections}
}

// Search godoc
// @Summary Search published documentation
// @Tags docs
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {object} helpers.Response{data=[]models.SearchHit}
// @Failure 400 {object} helpers.Response "empty query"
// @Router /api/docs/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		log.Warn("search: empty query")
		helpers.Error(w, http.StatusBadRequest, "empty query")
		return
	}

	start := time.Now()
	hits, err := h.sections.Search(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info("search: done",
		zap.String("query", query),
		zap.Int("hits", len(hits)),
		zap.Duration("elapsed", time.Since(start)),
	)
	helpers.JSON(w, http.StatusOK, hits)
}
