package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-screener/internal/services"
)

const defaultHistoryLimit = 50

type ResultHandler struct {
	screenings services.ScreeningService
	dashboard  services.DashboardService
}

func NewResultHandler(screenings services.ScreeningService, dashboard services.DashboardService) *ResultHandler {
	return &ResultHandler{
		screenings: screenings,
		dashboard:  dashboard,
	}
}

// HandleHistory handles GET /screenings?limit=
func (h *ResultHandler) HandleHistory(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 || limit > 500 {
		limit = defaultHistoryLimit
	}

	screenings, err := h.screenings.History(c.UserContext(), session, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"screenings": screenings,
		"total":      len(screenings),
	})
}

// HandleStats handles GET /dashboard/stats
func (h *ResultHandler) HandleStats(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	stats, err := h.dashboard.Stats(c.UserContext(), session)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(stats)
}
