package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"offernlp/internal/command"
	"offernlp/internal/domain"
)

// maxBodyBytes bounds request bodies across all JSON endpoints.
const maxBodyBytes = 1 * 1024 * 1024 // 1MB

type errorResponse struct {
	Error string `json:"error"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, errorResponse{Error: message})
}

// commandStatus maps command validation errors to client statuses;
// anything unrecognized is a server error.
func commandStatus(err error) int {
	switch {
	case errors.Is(err, command.ErrMissingRequiredField),
		errors.Is(err, command.ErrEmptyQuery),
		errors.Is(err, command.ErrEmptyComment):
		return http.StatusBadRequest
	case errors.Is(err, command.ErrConversationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeCommandError(ctx context.Context, w http.ResponseWriter, err error, logMessage string) {
	status := commandStatus(err)
	if status == http.StatusInternalServerError {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, logMessage, "error", err)
	}
	writeError(ctx, w, status, err.Error())
}
