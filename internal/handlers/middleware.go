package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"album-backend/internal/apperrors"
	"album-backend/internal/session"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "album_session"

// AuthMiddleware resolves the session cookie before protected routes run and
// puts the identity into Locals.
func AuthMiddleware(sessions session.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return jsonError(c, apperrors.ErrAuthRequired)
		}

		identity, err := sessions.Resolve(c.Context(), token)
		if err != nil || identity == nil {
			return jsonError(c, apperrors.ErrAuthRequired)
		}

		c.Locals("user_id", identity.UserID)
		c.Locals("username", identity.Username)
		return c.Next()
	}
}

func jsonError(c *fiber.Ctx, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
}

func setSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
