package controllers

import (
	"context"
	"log"
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

// VerifyCollegeHandler godoc
// @Summary Approve or reject a college's verification
// @Tags admin
// @Accept json
// @Produce json
// @Param college_id path string true "College ID"
// @Param verifyRequest body dto.VerifyCollegeRequest true "Verification decision"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/colleges/{college_id}/verify [patch]
func VerifyCollegeHandler(users *repository.UserRepo, mailer services.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := policy.RequireRole(viewer, models.RoleAdmin); err != nil {
			return err
		}

		id, err := utils.Oid(c.Params("college_id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid college id")
		}

		var body dto.VerifyCollegeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		college, err := users.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if college == nil || college.Role != models.RoleCollege {
			return fiber.NewError(fiber.StatusNotFound, "college not found")
		}

		if err := users.SetVerification(ctx, id, body.Status); err != nil {
			return err
		}

		if err := services.SendVerificationResult(mailer, college, body.Status); err != nil {
			log.Printf("verify college: email to %s failed: %v", college.Email, err)
		}

		return utils.OK(c, "college verification updated", fiber.Map{"status": body.Status})
	}
}

func ListCollegesHandler(users *repository.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		colleges, err := users.ListColleges(ctx)
		if err != nil {
			return err
		}
		return utils.OK(c, "", colleges)
	}
}
