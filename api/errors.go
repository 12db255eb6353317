package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mzhdanova/autoservice/internal/domain"
)

// writeError maps known domain errors to deterministic status codes and
// hides everything else behind an opaque 500, logging the real cause.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	code, msg := resolveError(err)
	if code == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("unhandled error")
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}

func resolveError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusUnauthorized, "access denied, no token provided"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, domain.ErrInvalidToken.Error()
	case errors.Is(err, domain.ErrServiceNotFound):
		return http.StatusNotFound, domain.ErrServiceNotFound.Error()
	case errors.Is(err, domain.ErrSlotTaken):
		return http.StatusConflict, domain.ErrSlotTaken.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}
