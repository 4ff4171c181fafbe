package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-screener/internal/services"
)

type SessionHandler struct {
	sessions services.SessionService
}

func NewSessionHandler(sessions services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type loginRequest struct {
	AccessToken string `json:"access_token"`
}

// HandleLogin handles POST /sessions. The access token issued by the auth
// provider comes as a bearer token or as {"access_token": ...}.
func (h *SessionHandler) HandleLogin(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		var req loginRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid request payload",
				})
			}
		}
		token = req.AccessToken
	}

	session, err := h.sessions.Login(c.UserContext(), token)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleLogout handles DELETE /sessions
func (h *SessionHandler) HandleLogout(c *fiber.Ctx) error {
	token, _ := c.Locals(tokenLocal).(string)
	if token == "" {
		token = bearerToken(c)
	}

	if err := h.sessions.Logout(c.UserContext(), token); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
