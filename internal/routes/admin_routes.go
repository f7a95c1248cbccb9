package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartscholar/internal/controllers"
)

func SetupAdmin(app *fiber.App, d Deps) {
	admin := app.Group("/admin")
	admin.Patch("/colleges/:college_id/verify", controllers.VerifyCollegeHandler(d.Users, d.Mailer))
}
