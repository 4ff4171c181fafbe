package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/services"
)

type JobRoleHandler struct {
	roles services.JobRoleService
}

func NewJobRoleHandler(roles services.JobRoleService) *JobRoleHandler {
	return &JobRoleHandler{roles: roles}
}

func (h *JobRoleHandler) HandleCreate(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.JobRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	role, err := h.roles.Create(c.UserContext(), session, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

func (h *JobRoleHandler) HandleList(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	roles, err := h.roles.List(c.UserContext(), session)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"job_roles": roles,
		"total":     len(roles),
	})
}

func (h *JobRoleHandler) HandleGet(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	role, err := h.roles.Get(c.UserContext(), session, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(role)
}

func (h *JobRoleHandler) HandleUpdate(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.JobRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	role, err := h.roles.Update(c.UserContext(), session, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(role)
}

func (h *JobRoleHandler) HandleDelete(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.roles.Delete(c.UserContext(), session, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
