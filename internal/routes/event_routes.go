package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartscholar/internal/controllers"
	"smartscholar/internal/middleware"
)

func SetupEventsPublic(app *fiber.App, d Deps) {
	app.Get("/events", controllers.ListEventsHandler(d.Events))

	// Static paths before the :event_id param route so they are not
	// shadowed by it.
	app.Get("/events/my-applications",
		middleware.RequireAuth(d.JWTSecret),
		controllers.MyApplicationsHandler(d.RegistrationSvc))

	app.Get("/events/:event_id", controllers.GetEventHandler(d.Events))
}

func SetupEvents(app *fiber.App, d Deps) {
	events := app.Group("/events")

	// College-side event management
	events.Post("/", controllers.CreateEventHandler(d.Events))
	events.Get("/mine/list", controllers.MyEventsHandler(d.Events))
	events.Patch("/:event_id", controllers.UpdateEventHandler(d.Events))
	events.Patch("/:event_id/status", controllers.SetEventStatusHandler(d.Events))
	events.Delete("/:event_id", controllers.DeleteEventHandler(d.Events))

	// Student applications
	events.Post("/:event_id/apply", controllers.ApplyHandler(d.RegistrationSvc))

	// College-side review
	events.Get("/:event_id/applications", controllers.ListApplicationsHandler(d.ReviewSvc))
	apps := app.Group("/events/applications")
	apps.Patch("/:application_id/approve", controllers.ApproveApplicationHandler(d.ReviewSvc))
	apps.Patch("/:application_id/reject", controllers.RejectApplicationHandler(d.ReviewSvc))
	apps.Patch("/:application_id/payment", controllers.UpdatePaymentHandler(d.ReviewSvc))
}
