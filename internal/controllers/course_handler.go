package controllers

import (
	"context"
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

func ListCoursesHandler(courses *repository.CourseRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q dto.CourseListQuery
		if err := c.QueryParser(&q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid query")
		}

		var collegeID *bson.ObjectID
		if q.CollegeID != "" {
			id, err := utils.Oid(q.CollegeID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid college id")
			}
			collegeID = &id
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		list, err := courses.List(ctx, collegeID, q.Level)
		if err != nil {
			return err
		}
		return utils.OK(c, "", list)
	}
}

func GetCourseHandler(courses *repository.CourseRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("course_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid course id")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		course, err := courses.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if course == nil {
			return fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return utils.OK(c, "", course)
	}
}

func CreateCourseHandler(courses *repository.CourseRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleCollege); err != nil {
			return err
		}

		var body dto.CourseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		now := time.Now().UTC()
		course := models.Course{
			ID:             bson.NewObjectID(),
			CollegeID:      viewer.ID,
			Name:           body.Name,
			Description:    body.Description,
			DurationMonths: body.DurationMonths,
			Level:          body.Level,
			TuitionFee:     body.TuitionFee,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if err := courses.Insert(ctx, course); err != nil {
			return err
		}
		return utils.Created(c, "course created", course)
	}
}

func loadOwnedCourse(ctx context.Context, c *fiber.Ctx, courses *repository.CourseRepo) (*models.Course, error) {
	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	id, err := utils.Oid(c.Params("course_id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid course id")
	}

	course, err := courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "course not found")
	}
	if err := policy.RequireCourseOwner(viewer, course); err != nil {
		return nil, err
	}
	return course, nil
}

func UpdateCourseHandler(courses *repository.CourseRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		course, err := loadOwnedCourse(ctx, c, courses)
		if err != nil {
			return err
		}

		var body dto.CourseUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		updates := bson.M{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}
		if body.Description != nil {
			updates["description"] = *body.Description
		}
		if body.DurationMonths != nil {
			updates["duration_months"] = *body.DurationMonths
		}
		if body.Level != nil {
			updates["level"] = *body.Level
		}
		if body.TuitionFee != nil {
			updates["tuition_fee"] = *body.TuitionFee
		}
		if len(updates) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
		}

		if err := courses.Update(ctx, course.ID, updates); err != nil {
			return err
		}
		return utils.OK(c, "course updated", nil)
	}
}

func DeleteCourseHandler(courses *repository.CourseRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		course, err := loadOwnedCourse(ctx, c, courses)
		if err != nil {
			return err
		}

		if err := courses.Delete(ctx, course.ID); err != nil {
			return err
		}
		return utils.OK(c, "course deleted", nil)
	}
}
