package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartscholar/dto"
	"smartscholar/internal/middleware"
	"smartscholar/internal/models"
	"smartscholar/internal/policy"
	"smartscholar/internal/services"
	"smartscholar/utils"
)

// ApplyHandler godoc
// @Summary Apply to a published event
// @Tags registrations
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param applyRequest body dto.ApplyRequest true "Application"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{event_id}/apply [post]
func ApplyHandler(svc *services.RegistrationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleStudent); err != nil {
			return err
		}

		eventID, err := utils.Oid(c.Params("event_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid event id")
		}

		var body dto.ApplyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		reg, err := svc.Apply(ctx, viewer.ID, eventID, body)
		if err != nil {
			return err
		}
		return utils.Created(c, "application submitted", reg)
	}
}

func MyApplicationsHandler(svc *services.RegistrationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleStudent); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		apps, err := svc.MyApplications(ctx, viewer.ID)
		if err != nil {
			return err
		}
		return utils.OK(c, "", apps)
	}
}
