package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartscholar/dto"
	"smartscholar/internal/middleware"
	"smartscholar/internal/models"
	"smartscholar/internal/services"
	"smartscholar/utils"
)

func requireViewer(c *fiber.Ctx) (models.Viewer, error) {
	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		return models.Viewer{}, fiber.ErrUnauthorized
	}
	return viewer, nil
}

// ListApplicationsHandler godoc
// @Summary List an event's applications with aggregate statistics
// @Tags registrations
// @Produce json
// @Param event_id path string true "Event ID"
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param payment_status query string false "Filter by payment status"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /events/{event_id}/applications [get]
func ListApplicationsHandler(svc *services.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, err := requireViewer(c)
		if err != nil {
			return err
		}

		eventID, err := utils.Oid(c.Params("event_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid event id")
		}

		var q dto.ApplicationListQuery
		if err := c.QueryParser(&q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid query")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		page, err := svc.ListApplications(ctx, viewer, eventID, q)
		if err != nil {
			return err
		}
		return utils.OK(c, "", page)
	}
}

func ApproveApplicationHandler(svc *services.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, err := requireViewer(c)
		if err != nil {
			return err
		}

		appID, err := utils.Oid(c.Params("application_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid application id")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		reg, err := svc.Approve(ctx, viewer, appID)
		if err != nil {
			return err
		}
		return utils.OK(c, "application approved", reg)
	}
}

func RejectApplicationHandler(svc *services.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, err := requireViewer(c)
		if err != nil {
			return err
		}

		appID, err := utils.Oid(c.Params("application_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid application id")
		}

		var body dto.RejectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "rejection_reason is required")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		reg, err := svc.Reject(ctx, viewer, appID, body.RejectionReason)
		if err != nil {
			return err
		}
		return utils.OK(c, "application rejected", reg)
	}
}

func UpdatePaymentHandler(svc *services.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, err := requireViewer(c)
		if err != nil {
			return err
		}

		appID, err := utils.Oid(c.Params("application_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid application id")
		}

		var body dto.PaymentUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		reg, err := svc.UpdatePayment(ctx, viewer, appID, body)
		if err != nil {
			return err
		}
		return utils.OK(c, "payment status updated", reg)
	}
}
