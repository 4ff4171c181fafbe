package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// HandleList handles GET /cvs
func (h *CVHandler) HandleList(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	cvs, err := h.cvService.List(c.UserContext(), session)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"cvs":   cvs,
		"total": len(cvs),
	})
}

// HandleDownload handles GET /cvs/:id/download
func (h *CVHandler) HandleDownload(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	cv, data, err := h.cvService.Download(c.UserContext(), session, id)
	if err != nil {
		return writeError(c, err)
	}

	contentType := cv.MimeType
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", cv.FileName))
	return c.Send(data)
}

// HandleDelete handles DELETE /cvs/:id
func (h *CVHandler) HandleDelete(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.cvService.Delete(c.UserContext(), session, id); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
