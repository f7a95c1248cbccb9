package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"smartscholar/internal/models"
	"smartscholar/utils"
)

type AuthClaims struct {
	UID                string `json:"uid,omitempty"`
	Role               string `json:"role,omitempty"`
	VerificationStatus string `json:"verification_status,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth reads the token from the "token" cookie or the
// Authorization header and puts the resolved viewer in c.Locals.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies("token")
		if tokenStr == "" {
			auth := c.Get("Authorization")
			if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
				return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
			}
			tokenStr = strings.TrimSpace(auth[7:])
		}

		var claims AuthClaims
		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing uid")
		}

		id, err := utils.Oid(uid)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid uid")
		}

		c.Locals("viewer", models.Viewer{
			ID:                 id,
			Role:               claims.Role,
			VerificationStatus: claims.VerificationStatus,
		})
		return c.Next()
	}
}

// ViewerFrom returns the viewer stored by RequireAuth.
func ViewerFrom(c *fiber.Ctx) (models.Viewer, bool) {
	v, ok := c.Locals("viewer").(models.Viewer)
	return v, ok
}
