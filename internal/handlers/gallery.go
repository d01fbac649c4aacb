package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type galleryImage struct {
	Name string
	URL  string
}

// ShowGallery lists the stored uploads carrying an image extension,
// sorted by name. Admin only.
func (h *Handler) ShowGallery(c *fiber.Ctx) error {
	names, err := h.uploads.Images()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Could not list uploads")
	}

	images := make([]galleryImage, 0, len(names))
	for _, name := range names {
		images = append(images, galleryImage{Name: name, URL: "/uploads/" + name})
	}

	return c.Render("uploads", fiber.Map{
		"Title":  "Uploaded Screenshots",
		"Images": images,
	}, "layout")
}

// ServeUpload returns a stored file by name. The route carries no
// session guard; names that do not resolve inside the upload directory
// yield 404.
func (h *Handler) ServeUpload(c *fiber.Ctx) error {
	path, err := h.uploads.Resolve(c.Params("filename"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	}
	return c.SendFile(path)
}
