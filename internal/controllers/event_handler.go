package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"smartscholar/dto"
	"smartscholar/internal/middleware"
	"smartscholar/internal/models"
	"smartscholar/internal/policy"
	"smartscholar/internal/repository"
	"smartscholar/utils"
)

// CreateEventHandler godoc
// @Summary Create a new event
// @Description Create an event with an optional banner upload
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param banner formData file false "Event banner image"
// @Param title formData string true "Event title"
// @Param event_type formData string true "Event type" Enums(hackathon, workshop, seminar, fest, competition)
// @Param registration_fee formData number false "Registration fee"
// @Param max_participants formData int false "Maximum participants (0 = unlimited)"
// @Param team_size formData string false "Team size JSON, e.g. {\"min\":2,\"max\":4}"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /events [post]
func CreateEventHandler(events *repository.EventRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleCollege); err != nil {
			return err
		}

		var body dto.EventCreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		// team_size arrives as a JSON string in multipart requests
		if raw := c.FormValue("team_size"); raw != "" {
			var ts models.TeamSize
			if err := json.Unmarshal([]byte(raw), &ts); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid team_size")
			}
			body.TeamSize = &ts
		}

		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.TeamSize != nil && (body.TeamSize.Min < 1 || body.TeamSize.Max < body.TeamSize.Min) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid team size bounds")
		}
		if body.Status == "" {
			body.Status = models.EventDraft
		}
		if body.Status != models.EventDraft && body.Status != models.EventPublished {
			return fiber.NewError(fiber.StatusBadRequest, "status must be draft or published")
		}

		bannerURL := ""
		if file, err := c.FormFile("banner"); err == nil && file != nil {
			fileName := fmt.Sprintf("event_%d%s", time.Now().UnixNano()/1e6, filepath.Ext(file.Filename))
			if utils.S3Configured() {
				src, err := file.Open()
				if err != nil {
					return err
				}
				defer src.Close()
				bannerURL, err = utils.UploadFileToS3(src, fileName, "event-banners")
				if err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "failed to upload banner")
				}
			} else {
				savePath := filepath.Join("./uploads", fileName)
				if err := c.SaveFile(file, savePath); err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "failed to save banner")
				}
				bannerURL = "/uploads/" + fileName
			}
		}

		now := time.Now().UTC()
		event := models.Event{
			ID:                   bson.NewObjectID(),
			Title:                body.Title,
			Description:          body.Description,
			EventType:            body.EventType,
			StartDate:            body.StartDate,
			EndDate:              body.EndDate,
			RegistrationDeadline: body.RegistrationDeadline,
			Venue:                body.Venue,
			IsOnline:             body.IsOnline,
			RegistrationFee:      body.RegistrationFee,
			MaxParticipants:      body.MaxParticipants,
			TeamSize:             body.TeamSize,
			Status:               body.Status,
			BannerURL:            bannerURL,
			CreatedBy:            viewer.ID,
			CreatedAt:            now,
			UpdatedAt:            now,
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if err := events.Insert(ctx, event); err != nil {
			return err
		}
		return utils.Created(c, "event created", event)
	}
}

func ListEventsHandler(events *repository.EventRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q dto.EventListQuery
		if err := c.QueryParser(&q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid query")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		list, err := events.ListPublished(ctx, q.EventType, q.Search)
		if err != nil {
			return err
		}
		return utils.OK(c, "", list)
	}
}

func GetEventHandler(events *repository.EventRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("event_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid event id")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		event, err := events.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if event == nil {
			return fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		return utils.OK(c, "", event)
	}
}

// loadOwnedEvent resolves the event and enforces the ownership policy.
func loadOwnedEvent(ctx context.Context, c *fiber.Ctx, events *repository.EventRepo) (*models.Event, models.Viewer, error) {
	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		return nil, models.Viewer{}, fiber.ErrUnauthorized
	}

	id, err := utils.Oid(c.Params("event_id"))
	if err != nil {
		return nil, viewer, fiber.NewError(fiber.StatusBadRequest, "invalid event id")
	}

	event, err := events.FindByID(ctx, id)
	if err != nil {
		return nil, viewer, err
	}
	if event == nil {
		return nil, viewer, fiber.NewError(fiber.StatusNotFound, "event not found")
	}
	if err := policy.RequireEventOwner(viewer, event); err != nil {
		return nil, viewer, err
	}
	return event, viewer, nil
}

func UpdateEventHandler(events *repository.EventRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		event, _, err := loadOwnedEvent(ctx, c, events)
		if err != nil {
			return err
		}

		var body dto.EventUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		updates := bson.M{}
		if body.Title != nil {
			updates["title"] = *body.Title
		}
		if body.Description != nil {
			updates["description"] = *body.Description
		}
		if body.EventType != nil {
			updates["event_type"] = *body.EventType
		}
		if body.StartDate != nil {
			updates["start_date"] = *body.StartDate
		}
		if body.EndDate != nil {
			updates["end_date"] = *body.EndDate
		}
		if body.RegistrationDeadline != nil {
			updates["registration_deadline"] = *body.RegistrationDeadline
		}
		if body.Venue != nil {
			updates["venue"] = *body.Venue
		}
		if body.IsOnline != nil {
			updates["is_online"] = *body.IsOnline
		}
		if body.RegistrationFee != nil {
			updates["registration_fee"] = *body.RegistrationFee
		}
		if body.MaxParticipants != nil {
			updates["max_participants"] = *body.MaxParticipants
		}
		if body.TeamSize != nil {
			updates["team_size"] = *body.TeamSize
		}
		if len(updates) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
		}

		if err := events.Update(ctx, event.ID, updates); err != nil {
			return err
		}
		return utils.OK(c, "event updated", nil)
	}
}

func SetEventStatusHandler(events *repository.EventRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		event, _, err := loadOwnedEvent(ctx, c, events)
		if err != nil {
			return err
		}

		var body dto.EventStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := events.Update(ctx, event.ID, bson.M{"status": body.Status}); err != nil {
			return err
		}
		return utils.OK(c, "event status updated", fiber.Map{"status": body.Status})
	}
}

func DeleteEventHandler(events *repository.EventRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		event, _, err := loadOwnedEvent(ctx, c, events)
		if err != nil {
			return err
		}

		if err := events.Delete(ctx, event.ID); err != nil {
			return err
		}
		return utils.OK(c, "event deleted", nil)
	}
}

func MyEventsHandler(events *repository.EventRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleCollege); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		list, err := events.ListByCollege(ctx, viewer.ID)
		if err != nil {
			return err
		}
		return utils.OK(c, "", list)
	}
}
