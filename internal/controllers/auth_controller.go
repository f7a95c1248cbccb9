package controllers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"smartscholar/dto"
	"smartscholar/internal/middleware"
	"smartscholar/internal/models"
	"smartscholar/internal/repository"
	"smartscholar/internal/services"
	"smartscholar/utils"
)

var validate = validator.New()

func signToken(secret string, user *models.User) (string, error) {
	claims := middleware.AuthClaims{
		UID:                user.ID.Hex(),
		Role:               user.Role,
		VerificationStatus: user.VerificationStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// RegisterHandler godoc
// @Summary Register a student or college account
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterRequest true "Register Request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /auth/register [post]
func RegisterHandler(users *repository.UserRepo, mailer services.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.Role == models.RoleCollege && body.CollegeName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "college_name is required for college accounts")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		existing, err := users.FindByEmail(ctx, body.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fiber.NewError(fiber.StatusBadRequest, "email already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user := models.User{
			ID:             bson.NewObjectID(),
			Name:           body.Name,
			Email:          strings.ToLower(body.Email),
			PasswordHash:   string(hash),
			Role:           body.Role,
			CollegeName:    body.CollegeName,
			Institution:    body.Institution,
			EducationLevel: body.EducationLevel,
			Phone:          body.Phone,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if user.Role == models.RoleCollege {
			user.VerificationStatus = models.VerificationPending
		}

		if err := users.Insert(ctx, user); err != nil {
			return err
		}

		if user.Role == models.RoleCollege {
			if err := mailer.Send(user.Email,
				"College verification submitted",
				"Hello "+user.Name+",\n\nYour college account was created and is pending admin verification.\n"); err != nil {
				log.Printf("register: verification email to %s failed: %v", user.Email, err)
			}
		}

		return utils.Created(c, "account created", fiber.Map{"id": user.ID, "role": user.Role})
	}
}

// LoginHandler issues the JWT both as an httpOnly cookie and in the body.
func LoginHandler(users *repository.UserRepo, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByEmail(ctx, body.Email)
		if err != nil {
			return err
		}
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}

		token, err := signToken(secret, user)
		if err != nil {
			return err
		}

		c.Cookie(&fiber.Cookie{
			Name:     "token",
			Value:    token,
			Expires:  time.Now().Add(7 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		return utils.OK(c, "logged in", fiber.Map{"token": token, "user": user})
	}
}

func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     "token",
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
		})
		return utils.OK(c, "logged out", nil)
	}
}

func MeHandler(users *repository.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, viewer.ID)
		if err != nil {
			return err
		}
		if user == nil {
			return fiber.ErrUnauthorized
		}
		return utils.OK(c, "", user)
	}
}
