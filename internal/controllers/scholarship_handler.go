package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartscholar/dto"
	"smartscholar/internal/middleware"
	"smartscholar/internal/models"
	"smartscholar/internal/policy"
	"smartscholar/internal/repository"
	"smartscholar/internal/services"
	"smartscholar/utils"
)

// ListCalendarHandler godoc
// @Summary List scholarship calendar entries
// @Tags scholarships
// @Produce json
// @Param status query string false "Filter by derived status" Enums(upcoming, open, closed)
// @Param level query string false "Filter by level"
// @Param year query int false "Filter by year"
// @Success 200 {object} map[string]interface{}
// @Router /scholarships/calendar [get]
func ListCalendarHandler(svc *services.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q dto.CalendarListQuery
		if err := c.QueryParser(&q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid query")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		entries, err := svc.List(ctx, q)
		if err != nil {
			return err
		}
		return utils.OK(c, "", entries)
	}
}

func CreateCalendarEntryHandler(svc *services.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleAdmin); err != nil {
			return err
		}

		var body dto.ScholarshipEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		entry, err := svc.Create(ctx, body)
		if err != nil {
			return err
		}
		return utils.Created(c, "calendar entry created", entry)
	}
}

func UpdateCalendarEntryHandler(svc *services.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleAdmin); err != nil {
			return err
		}

		id, err := utils.Oid(c.Params("entry_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid entry id")
		}

		var body dto.ScholarshipUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		entry, err := svc.Update(ctx, id, body)
		if err != nil {
			return err
		}
		return utils.OK(c, "calendar entry updated", entry)
	}
}

func DeleteCalendarEntryHandler(svc *services.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleAdmin); err != nil {
			return err
		}

		id, err := utils.Oid(c.Params("entry_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid entry id")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if err := svc.Delete(ctx, id); err != nil {
			return err
		}
		return utils.OK(c, "calendar entry deleted", nil)
	}
}

func SubscribeHandler(subs *repository.SubscriptionRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SubscribeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := subs.Subscribe(ctx, body.Email); err != nil {
			return err
		}
		return utils.OK(c, "subscribed to scholarship reminders", nil)
	}
}

func UnsubscribeHandler(subs *repository.SubscriptionRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SubscribeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := subs.Unsubscribe(ctx, body.Email); err != nil {
			return err
		}
		return utils.OK(c, "unsubscribed", nil)
	}
}

// RemindMeHandler records a per-scholarship reminder request.
func RemindMeHandler(subs *repository.SubscriptionRepo, calendar *repository.ScholarshipRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("entry_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid entry id")
		}

		var body dto.RemindMeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.ReminderDaysBefore == 0 {
			body.ReminderDaysBefore = 7
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		entry, err := calendar.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if entry == nil {
			return fiber.NewError(fiber.StatusNotFound, "calendar entry not found")
		}

		if err := subs.UpsertReminder(ctx, body.Email, id, body.ReminderDaysBefore); err != nil {
			return err
		}
		return utils.OK(c, "reminder saved", nil)
	}
}
