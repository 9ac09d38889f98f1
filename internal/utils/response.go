package utils

import (
	"encoding/json"
	"net/http"

	"DOCSHELF_BACK-END/internal/apperr"
	"DOCSHELF_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes {"detail": ...} with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, detail string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	WriteJSONResponse(w, status, dto.ErrorResponse{Detail: detail})
}

// WriteError maps an application error onto its status and client-safe detail
func WriteError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	WriteErrorResponse(w, appErr.Status(), appErr.Detail)
}
