package middleware

import (
	"net/http"
	"strings"

	"github.com/anik404/go-blog/backend/internal/auth"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Authenticate requires a valid bearer token. An expired token with a
// genuine signature is transparently replaced by a freshly issued one for
// the duration of the request; the refreshed token is not returned to the
// caller. On success the decoded claims are attached to the context for
// downstream handlers; the request body is never touched.
func Authenticate(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c)
			if err != nil {
				return err
			}

			if tokens.IsExpired(tokenString) {
				refreshed, err := tokens.Refresh(tokenString)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
				}
				tokenString = refreshed
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// RequireRoles requires a valid, unexpired bearer token whose role claim is
// one of the accepted roles.
func RequireRoles(tokens *auth.TokenService, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			for _, role := range roles {
				if claims.Role == role {
					c.Set(identityKey, claims)
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				"You do not have the authorization and permissions to access this resource.")
		}
	}
}

// Identity returns the authenticated claims attached by the gate, or nil on
// an unprotected route.
func Identity(c echo.Context) *auth.Claims {
	claims, _ := c.Get(identityKey).(*auth.Claims)
	return claims
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}
	return parts[1], nil
}
