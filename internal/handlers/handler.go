// Package handlers implements the per-endpoint logic: login, account
// views, the fake transfer flow, screenshot upload and the admin
// gallery. All handlers render HTML views or redirect; guarded routes
// receive the current user via c.Locals("user").
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"demo-bank/internal/models"
	"demo-bank/internal/session"
	"demo-bank/internal/store"
	"demo-bank/internal/uploads"
)

// Handler bundles the injected dependencies shared by all routes.
type Handler struct {
	users    store.Store
	sessions *session.Manager
	uploads  *uploads.Store
	log      *zap.Logger
}

// New constructs a Handler over the given stores.
func New(users store.Store, sessions *session.Manager, up *uploads.Store, log *zap.Logger) *Handler {
	return &Handler{users: users, sessions: sessions, uploads: up, log: log}
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// landingFor is the post-login destination per role.
func landingFor(role models.Role) string {
	if role == models.RoleAdmin {
		return "/uploads"
	}
	return "/accounts"
}
