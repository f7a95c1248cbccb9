package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartscholar/internal/controllers"
)

func SetupAuth(app *fiber.App, d Deps) {
	auth := app.Group("/auth")
	auth.Post("/register", controllers.RegisterHandler(d.Users, d.Mailer))
	auth.Post("/login", controllers.LoginHandler(d.Users, d.JWTSecret))
	auth.Post("/logout", controllers.LogoutHandler())
}

// SetupAuthProtected registers the routes that need a resolved viewer.
func SetupAuthProtected(app *fiber.App, d Deps) {
	app.Get("/auth/me", controllers.MeHandler(d.Users))
}
