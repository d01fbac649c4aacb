package routes

import (
	"github.com/gofiber/fiber/v2"

	"demo-bank/internal/handlers"
	"demo-bank/internal/middleware"
)

// Setup registers every route. Public routes and the admin gallery are
// registered before the user group so its session guard does not apply
// to them; the raw file route is unguarded by contract.
func Setup(app *fiber.App, h *handlers.Handler, gate *middleware.Gate) {
	// Public routes
	app.Get("/", h.ShowLogin)
	app.Post("/login", h.HandleLogin)
	app.Get("/logout", h.HandleLogout)
	app.Get("/uploads/:filename", h.ServeUpload)

	// Admin routes
	app.Get("/uploads", gate.RequireAdmin, h.ShowGallery)

	// User routes – require an authenticated user-role session
	userGroup := app.Group("/", gate.RequireUser)
	userGroup.Get("/accounts", h.ShowAccounts)
	userGroup.Get("/accounts/:id", h.ShowAccountDetail)
	userGroup.Get("/send", h.ShowSend)
	userGroup.Post("/send", h.HandleSend)
	userGroup.Get("/process", h.ShowProcess)
	userGroup.Post("/process", h.HandleProcess)
	userGroup.Get("/cards", h.ShowCards)
	userGroup.Get("/profile", h.ShowProfile)
}
