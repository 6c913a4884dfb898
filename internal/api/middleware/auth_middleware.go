package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/models"
	repository "github.com/factura-dev/invoicing-api/internal/repositories"
	"github.com/factura-dev/invoicing-api/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type AuthMiddleware struct {
	jwtKey    []byte
	tokenRepo repository.TokenRepository
}

func NewAuthMiddleware(jwtKey []byte, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey, tokenRepo: tokenRepo}
}

// Authenticate verifies the bearer token, rejects revoked tokens and stashes
// the claims in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Unauthenticated."))

			return
		}

		// Token is of format: "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Unauthenticated."))

			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.BadRequestError("unexpected signing method")
			}

			return m.jwtKey, nil
		})

		if err != nil || !token.Valid {
			logger.Warn("Token verification failed", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Unauthenticated."))

			return
		}

		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
			logger.Warn("Expired token", slog.String("userId", claims.UserID.String()))
			response.Error(w, errors.UnauthorizedError("Unauthenticated."))

			return
		}

		// Revocation is permanent: a logged-out token never authenticates
		// again, even before its expiry.
		revoked, err := m.tokenRepo.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			logger.Error("Token revocation check failed", slog.Any("error", err))
			response.Error(w, errors.InternalError("Authentication check failed").WithError(err))

			return
		}

		if revoked {
			logger.Warn("Revoked token used", slog.String("userId", claims.UserID.String()))
			response.Error(w, errors.UnauthorizedError("Unauthenticated."))

			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)

		requestScopedLogger := logger.With(slog.String("userId", claims.UserID.String()))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
