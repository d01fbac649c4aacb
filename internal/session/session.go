// Package session owns the server-side session associated with a
// browser: the identity payload set at login, cleared at logout, plus
// one-shot flash messages.
package session

import (
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"demo-bank/internal/models"
)

const (
	keyUsername = "username"
	keyName     = "name"
	keyRole     = "role"
	keyFlash    = "flash"
)

// Manager wraps the Fiber session store. Sessions do not expire
// server-side; lifetime is left to the transport cookie.
type Manager struct {
	store *fibersession.Store
}

// NewManager builds a manager with UUID session keys.
func NewManager() *Manager {
	return &Manager{
		store: fibersession.New(fibersession.Config{
			KeyGenerator: uuid.NewString,
		}),
	}
}

// Start establishes a fresh session for the identity, replacing whatever
// session rode in on the request cookie.
func (m *Manager) Start(c *fiber.Ctx, id models.Identity) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(keyUsername, id.Username)
	sess.Set(keyName, id.Name)
	sess.Set(keyRole, string(id.Role))
	return sess.Save()
}

// Current returns the session identity, or false when the request
// carries no authenticated session.
func (m *Manager) Current(c *fiber.Ctx) (models.Identity, bool) {
	sess, err := m.store.Get(c)
	if err != nil {
		return models.Identity{}, false
	}
	username, _ := sess.Get(keyUsername).(string)
	if username == "" {
		return models.Identity{}, false
	}
	name, _ := sess.Get(keyName).(string)
	role, _ := sess.Get(keyRole).(string)
	return models.Identity{Username: username, Name: name, Role: models.Role(role)}, true
}

// End destroys the session. Ending an absent session is a no-op.
func (m *Manager) End(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil
	}
	return sess.Destroy()
}

// Flash stores a one-shot message for the next rendered page.
func (m *Manager) Flash(c *fiber.Ctx, message string) {
	sess, err := m.store.Get(c)
	if err != nil {
		return
	}
	sess.Set(keyFlash, message)
	_ = sess.Save()
}

// PopFlash returns the pending flash message, clearing it.
func (m *Manager) PopFlash(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		return ""
	}
	message, _ := sess.Get(keyFlash).(string)
	if message != "" {
		sess.Delete(keyFlash)
		_ = sess.Save()
	}
	return message
}
