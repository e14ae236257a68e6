package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"album-backend/internal/apperrors"
	"album-backend/internal/models"
	"album-backend/internal/session"
	"album-backend/internal/store"
)

// SessionHandler reports whether the caller has a live session. Never errors.
func SessionHandler(sessions session.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.JSON(fiber.Map{"authenticated": false})
		}

		identity, err := sessions.Resolve(c.Context(), token)
		if err != nil || identity == nil {
			return c.JSON(fiber.Map{"authenticated": false})
		}

		return c.JSON(fiber.Map{"authenticated": true, "username": identity.Username})
	}
}

// LoginHandler verifies credentials and establishes a session cookie.
func LoginHandler(users store.Users, sessions session.Provider, ttl time.Duration, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return jsonError(c, apperrors.ErrMissingCredentials)
		}
		if req.Username == "" || req.Password == "" {
			return jsonError(c, apperrors.ErrMissingCredentials)
		}

		user, err := users.FindByUsername(c.Context(), req.Username)
		if err != nil {
			return jsonError(c, err)
		}
		if user == nil {
			return jsonError(c, apperrors.ErrBadCredentials)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.WithField("username", req.Username).Debug("login rejected")
			return jsonError(c, apperrors.ErrBadCredentials)
		}

		token, err := sessions.Create(c.Context(), user.ID, user.Username)
		if err != nil {
			return jsonError(c, err)
		}

		setSessionCookie(c, token, ttl)
		return c.JSON(fiber.Map{"ok": true, "username": user.Username})
	}
}

// LogoutHandler destroys the caller's session, if any. Always succeeds.
func LogoutHandler(sessions session.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(SessionCookie); token != "" {
			_ = sessions.Destroy(c.Context(), token)
		}
		clearSessionCookie(c)
		return c.JSON(fiber.Map{"ok": true})
	}
}
