// Package middleware provides the authorization gate applied in front of
// route handlers: session resolution plus role checks.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"demo-bank/internal/models"
	"demo-bank/internal/session"
	"demo-bank/internal/store"
)

// Gate wires the session manager and the identity store into guard
// handlers. A passing guard loads the backing user record into
// c.Locals("user").
type Gate struct {
	Sessions *session.Manager
	Users    store.Store
	Log      *zap.Logger
}

// RequireUser admits sessions with the user role. Anonymous requests are
// redirected to the login page, admin sessions to the gallery.
func (g *Gate) RequireUser(c *fiber.Ctx) error {
	return g.require(c, models.RoleUser, "/uploads")
}

// RequireAdmin admits sessions with the admin role. The authentication
// check runs before the role check; a missing session is never treated
// as merely "not admin".
func (g *Gate) RequireAdmin(c *fiber.Ctx) error {
	return g.require(c, models.RoleAdmin, "/accounts")
}

func (g *Gate) require(c *fiber.Ctx, role models.Role, wrongRoleTarget string) error {
	id, ok := g.Sessions.Current(c)
	if !ok {
		return c.Redirect("/")
	}
	if id.Role != role {
		return c.Redirect(wrongRoleTarget)
	}

	user, err := g.Users.FindUser(c.Context(), id.Username)
	if err != nil {
		// Session references a user that no longer resolves; drop it.
		g.Log.Warn("session user not found", zap.String("username", id.Username), zap.Error(err))
		_ = g.Sessions.End(c)
		return c.Redirect("/")
	}

	c.Locals("user", user)
	return c.Next()
}
