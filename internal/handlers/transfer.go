package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lunadocs/internal/logger"
	"lunadocs/internal/models"
	"lunadocs/internal/services"
	helpers "lunadocs/internal/utils/helpers"

	"go.uber.org/zap"
)

type TransferHandler struct {
	transfer services.TransferService
}

func NewTransferHandler(transfer services.TransferService) *TransferHandler {
	return &TransferHandler{transfer: transfer}
}

// Export
// @Summary      Export all sections
// @Description  Downloads every section as a JSON document that Import accepts.
// @Tags         admin-transfer
// @Security     CookieAuth
// @Produce      json
// @Success      200 {object} models.ExportDocument
// @Router       /api/admin/export [get]
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.transfer.Export(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("export failed", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "export failed")
		return
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "export failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFileName(time.Now())))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Import
// @Summary      Import sections
// @Description  Creates each record; failures are skipped and counted. replaceAll deletes existing sections first.
// @Tags         admin-transfer
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body body models.ImportRequest true "Sections to import"
// @Success      200 {object} models.ImportResult
// @Failure      400 {object} helpers.Response "invalid data format"
// @Failure      503 {object} helpers.Response "read-only mode"
// @Router       /api/admin/import [post]
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			helpers.Error(w, http.StatusBadRequest, "invalid data format")
			return
		}
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Sections == nil {
		helpers.Error(w, http.StatusBadRequest, "invalid data format")
		return
	}

	res, err := h.transfer.Import(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.Raw(w, http.StatusOK, res)
}
