package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"demo-bank/internal/models"
	"demo-bank/internal/store"
)

// ShowLogin renders the login page. An already authenticated visitor is
// sent straight to their role landing page.
func (h *Handler) ShowLogin(c *fiber.Ctx) error {
	if id, ok := h.sessions.Current(c); ok {
		return c.Redirect(landingFor(id.Role))
	}
	return c.Render("login", fiber.Map{
		"Title": "Sign In",
		"Flash": h.sessions.PopFlash(c),
	}, "layout")
}

// HandleLogin checks the submitted credentials against the identity
// store and establishes a session on success. Failures redirect back to
// the login page without revealing which field was wrong.
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if username == "" || password == "" {
		h.sessions.Flash(c, "Username and password are required.")
		return c.Redirect("/")
	}

	user, err := h.users.FindUser(c.Context(), username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.log.Error("login lookup failed", zap.String("username", username), zap.Error(err))
		}
		return h.rejectLogin(c, username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return h.rejectLogin(c, username)
	}

	if err := h.sessions.Start(c, models.Identity{
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}); err != nil {
		h.log.Error("session start failed", zap.String("username", username), zap.Error(err))
		h.sessions.Flash(c, "Could not sign you in.")
		return c.Redirect("/")
	}

	h.log.Info("login", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return c.Redirect(landingFor(user.Role))
}

func (h *Handler) rejectLogin(c *fiber.Ctx, username string) error {
	h.log.Warn("login rejected", zap.String("username", username))
	h.sessions.Flash(c, "Invalid username or password.")
	return c.Redirect("/")
}

// HandleLogout clears the session and returns to the login page.
// Logging out without a session is a no-op.
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	_ = h.sessions.End(c)
	return c.Redirect("/")
}
