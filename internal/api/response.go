package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"shareit/internal/database"
	"shareit/internal/service"

	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}

// respondError — единая точка превращения доменных ошибок в HTTP-статусы.
// Всё, что не опознано, уходит как 500 с общим текстом: внутренние
// детали наружу не отдаем.
func respondError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error().Err(err).Msg("unexpected error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
