package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"alfredoptarigan/cv-screener/internal/services"
)

// writeError maps service errors onto HTTP responses.
func writeError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var scoringErr *services.ScoringError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})
	case errors.As(err, &scoringErr):
		return c.Status(scoringErr.Status).JSON(fiber.Map{"error": scoringErr.Message})
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	case errors.Is(err, services.ErrCVNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CV not found"})
	case errors.Is(err, services.ErrJobRoleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job role not found"})
	}

	log.Errorf("❌ %s %s failed: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

// parseIDParam returns a *fiber.Error that the app's ErrorHandler renders.
func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+" format")
	}
	return id, nil
}

// ErrorHandler renders errors that escape handlers, including *fiber.Error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
