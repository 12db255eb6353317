package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mzhdanova/autoservice/internal/service/auth"
)

// TokenVerifier is the slice of the auth service the middleware needs.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.TokenClaims, error)
}

// AuthRequired rejects requests without a valid bearer token and exposes
// the verified claims to downstream handlers.
func AuthRequired(verifier TokenVerifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifier.VerifyToken(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			writeError(c, log, err)
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
