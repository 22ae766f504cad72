package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lunadocs/internal/logger"
	"lunadocs/internal/repository"
	"lunadocs/internal/services"
	helpers "lunadocs/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// writeError maps service and storage errors onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrSlugTaken):
		helpers.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrReadOnly):
		helpers.ReadOnlyError(w, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}
