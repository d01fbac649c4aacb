package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Destinations offered by the transfer picker. Display-only; nothing is
// ever sent anywhere.
var transferDestinations = []string{
	"Bank of America", "Chase", "Wells Fargo",
	"Citi Bank", "US Bank", "Cash App",
	"Venmo", "PayPal",
}

// The opaque token shown on the process page. Purely cosmetic.
const processLinkToken = "gsbeybdtg227262553-y6bds63h3be88u3nnyhe"

// ShowSend renders the transfer destination picker.
func (h *Handler) ShowSend(c *fiber.Ctx) error {
	return c.Render("send", fiber.Map{
		"Title": "Send Money",
		"Banks": transferDestinations,
	}, "layout")
}

// HandleSend accepts the picker form without validating anything and
// moves on to the upload step.
func (h *Handler) HandleSend(c *fiber.Ctx) error {
	return c.Redirect("/process")
}

// ShowProcess renders the screenshot upload form.
func (h *Handler) ShowProcess(c *fiber.Ctx) error {
	return c.Render("process", fiber.Map{
		"Title": "Complete Payment",
		"Link":  processLinkToken,
		"Flash": h.sessions.PopFlash(c),
	}, "layout")
}

// HandleProcess stores the uploaded screenshot under its client-supplied
// name. An absent or empty selection is informational, not an error.
func (h *Handler) HandleProcess(c *fiber.Ctx) error {
	header, err := c.FormFile("screenshot")
	if err != nil || header.Filename == "" {
		h.sessions.Flash(c, "No screenshot selected.")
		return c.Redirect("/process")
	}

	file, err := header.Open()
	if err != nil {
		h.log.Error("open uploaded screenshot", zap.String("filename", header.Filename), zap.Error(err))
		h.sessions.Flash(c, "Could not read the screenshot.")
		return c.Redirect("/process")
	}
	defer file.Close()

	if err := h.uploads.Save(header.Filename, file); err != nil {
		h.log.Error("store screenshot", zap.String("filename", header.Filename), zap.Error(err))
		h.sessions.Flash(c, "Could not store the screenshot.")
		return c.Redirect("/process")
	}

	h.log.Info("screenshot stored",
		zap.String("filename", header.Filename),
		zap.String("username", currentUser(c).Username))
	h.sessions.Flash(c, "Screenshot uploaded successfully!")
	return c.Redirect("/process")
}
