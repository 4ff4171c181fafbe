package handlers

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/services"
)

// ScoringHandler exposes the scoring function over HTTP. Every failure is
// answered as {"error": message}.
type ScoringHandler struct {
	scorer services.ScoringClient
}

func NewScoringHandler(scorer services.ScoringClient) *ScoringHandler {
	return &ScoringHandler{
		scorer: scorer,
	}
}

// ScoringCORS lets browsers call the scoring function from any origin.
func ScoringCORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	})
}

// RequireFunctionKey guards the scoring function with a shared key sent as
// the apikey header or a bearer token. An empty key leaves the route open.
func RequireFunctionKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}

		given := c.Get("apikey")
		if given == "" {
			given = bearerToken(c)
		}
		if subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}

// HandleScreenCVs handles POST /functions/v1/screen-cvs
func (h *ScoringHandler) HandleScreenCVs(c *fiber.Ctx) error {
	var req models.ScoringRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resp, err := h.scorer.Score(c.UserContext(), req)
	if err != nil {
		var scoringErr *services.ScoringError
		if errors.As(err, &scoringErr) {
			return c.Status(scoringErr.Status).JSON(fiber.Map{"error": scoringErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(resp)
}
