package http

import (
	"errors"
	"net/http"

	"todolist-sync/internal/todolist"
	"todolist-sync/internal/todolist/repository"
	pkgErrors "todolist-sync/pkg/errors"
)

// mapError translates domain/repository errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todolist.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "list not found")
	case errors.Is(err, repository.ErrDuplicateID):
		return pkgErrors.NewHTTPError(http.StatusConflict, "list id already exists")
	case errors.Is(err, todolist.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// mapBindError reports malformed or incomplete request bodies as 400.
func (h *handler) mapBindError(err error) error {
	if errors.Is(err, todolist.ErrValidation) {
		return h.mapError(err)
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
}
