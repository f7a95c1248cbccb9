package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartscholar/internal/controllers"
)

func SetupScholarshipsPublic(app *fiber.App, d Deps) {
	sch := app.Group("/scholarships")
	sch.Get("/calendar", controllers.ListCalendarHandler(d.ScholarshipSvc))
	sch.Post("/subscribe", controllers.SubscribeHandler(d.Subscriptions))
	sch.Post("/unsubscribe", controllers.UnsubscribeHandler(d.Subscriptions))
	sch.Post("/calendar/:entry_id/remind-me", controllers.RemindMeHandler(d.Subscriptions, d.Calendar))
}

func SetupScholarships(app *fiber.App, d Deps) {
	sch := app.Group("/scholarships")
	sch.Post("/calendar", controllers.CreateCalendarEntryHandler(d.ScholarshipSvc))
	sch.Patch("/calendar/:entry_id", controllers.UpdateCalendarEntryHandler(d.ScholarshipSvc))
	sch.Delete("/calendar/:entry_id", controllers.DeleteCalendarEntryHandler(d.ScholarshipSvc))
}
