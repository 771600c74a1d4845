package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"animeverse/internal/repository"
	"animeverse/internal/service"
	"animeverse/internal/validation"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDomainError maps each domain error variant to a status code and a
// user-facing message; unrecognized errors become an opaque 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Неверные данные", Fields: fieldErrs})
		return
	}

	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		WriteError(w, conflictErr.Error(), http.StatusConflict)
		return
	}

	var authErr *service.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusUnauthorized
		if authErr.Reason == service.AuthBanned {
			status = http.StatusForbidden
		}
		WriteError(w, authErr.Error(), status)
		return
	}

	if errors.Is(err, service.ErrForbidden) {
		WriteError(w, err.Error(), http.StatusForbidden)
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		WriteError(w, err.Error(), http.StatusNotFound)
		return
	}

	if errors.Is(err, repository.ErrReportResolved) {
		WriteError(w, err.Error(), http.StatusConflict)
		return
	}

	WriteError(w, err.Error(), http.StatusInternalServerError)
}
