package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/services"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

var validationErrs = []error{
	core.ErrInvalidAmount,
	core.ErrInvalidLimit,
	core.ErrInvalidTarget,
	core.ErrInvalidSaved,
	core.ErrInvalidDate,
	core.ErrInvalidType,
	core.ErrEmptyCategory,
	core.ErrEmptyName,
	services.ErrEmptyCurrency,
}

// writeDomainError maps domain errors onto HTTP statuses: validation
// failures are 422, a duplicate budget category is 409, anything else
// is a 500.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, core.ErrDuplicateCategory) {
		respondError(w, http.StatusConflict, err)
		return
	}
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			respondError(w, http.StatusUnprocessableEntity, err)
			return
		}
	}
	s.logger.ErrorContext(r.Context(), "Request failed",
		log.FieldMethod, r.Method,
		log.FieldPath, r.URL.Path,
		log.FieldError, err)
	respondError(w, http.StatusInternalServerError, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}
