package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/services"
)

type ScreeningHandler struct {
	screenings services.ScreeningService
}

func NewScreeningHandler(screenings services.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{
		screenings: screenings,
	}
}

// HandleFinalizeSelection handles POST /screenings/selection
func (h *ScreeningHandler) HandleFinalizeSelection(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.SelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	cvs, err := h.screenings.FinalizeSelection(c.UserContext(), session, req.CVIDs)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        fmt.Sprintf("%d CV(s) selected for screening", len(cvs)),
		"total_selected": len(cvs),
		"cvs":            cvs,
	})
}

// HandleScreen handles POST /screenings
func (h *ScreeningHandler) HandleScreen(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.ScreenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	run, err := h.screenings.Screen(c.UserContext(), session, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(run)
}
