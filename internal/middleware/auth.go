package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/yasinga/yasinga/internal/errors"
	"github.com/yasinga/yasinga/internal/handlers"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/services"
)

// RequireAuth creates a middleware that requires a valid session token from
// the external auth provider. The user row is upserted from the verified
// claims, so a first authenticated request provisions the account.
func RequireAuth(tokenService services.TokenServiceInterface, userRepo repositories.UserRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			user := &models.User{
				ID:              userID,
				Email:           claims.Email,
				FirstName:       claims.FirstName,
				LastName:        claims.LastName,
				ProfileImageURL: claims.ProfileImageURL,
			}
			if err := userRepo.Upsert(user); err != nil {
				slog.Error("Failed to provision user from session claims",
					"trace_id", GetTraceID(c),
					"user_id", userID.String(),
					"error", err.Error(),
				)
				return handlers.SendSystemError(c, err)
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)

			return next(c)
		}
	}
}
