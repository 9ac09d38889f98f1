package handlers

import (
	"errors"
	"net/http"
	"strings"

	"DOCSHELF_BACK-END/internal/apperr"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/repository"
	"DOCSHELF_BACK-END/internal/utils"
)

// storeError translates repository sentinels into client errors.
// notFound is the detail used for a missing or foreign row.
func storeError(err error, notFound, duplicate string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(notFound)
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Validation(duplicate)
	case errors.Is(err, repository.ErrInvalidReference):
		what := strings.TrimPrefix(err.Error(), repository.ErrInvalidReference.Error()+": ")
		return apperr.Validation("Invalid reference: " + what)
	}
	return apperr.Internal(err)
}

// respondError writes err, logging it first when it is not a client error.
func respondError(w http.ResponseWriter, log logger.Logger, err error, msg string) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperr.KindInternal {
		log.Error(err, msg)
	}
	utils.WriteError(w, err)
}
