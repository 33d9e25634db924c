package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zatekoja/nearbycare/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/nearbycare/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// RespondWithAppError maps err onto the public error body. Validation,
// configuration and rate limit errors expose their message as the error code;
// anything else is reported as server_error with a short detail.
func RespondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	logger := observability.LoggerFromContext(r.Context())

	appErr, ok := apperrors.As(err)
	if !ok {
		logger.Error().Err(err).Msg("request failed")
		respondWithJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "server_error",
			"detail": "internal error",
		})
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrorTypeRateLimited:
		respondWithError(w, http.StatusTooManyRequests, appErr.Message)
	case apperrors.ErrorTypeConfiguration:
		logger.Error().Str("setting", appErr.Message).Msg("required setting is not configured")
		respondWithError(w, http.StatusInternalServerError, appErr.Message)
	default:
		logger.Error().Err(err).Str("error_type", string(appErr.Type)).Msg("request failed")
		respondWithJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "server_error",
			"detail": appErr.Message,
		})
	}
}
