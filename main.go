// @title SmartScholar API
// @version 1.0
// @description College discovery, event registration and scholarship reminders.
// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "smartscholar/docs"

	"smartscholar/bootstrap"
	"smartscholar/config"
	"smartscholar/database"
	"smartscholar/internal/httperr"
	"smartscholar/internal/middleware"
	"smartscholar/internal/repository"
	"smartscholar/internal/routes"
	"smartscholar/internal/scheduler"
	"smartscholar/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// Repositories
	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	registrations := repository.NewRegistrationRepo(db)
	calendar := repository.NewScholarshipRepo(db)
	subscriptions := repository.NewSubscriptionRepo(db)
	courses := repository.NewCourseRepo(db)

	mailer := &services.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SMTPFrom,
		Password: cfg.SMTPPassword,
	}

	// Services
	registrationSvc := services.NewRegistrationService(events, registrations, users)
	reviewSvc := services.NewReviewService(events, registrations, users, mailer)
	scholarshipSvc := services.NewScholarshipService(calendar)
	reminderSvc := services.NewReminderService(calendar, subscriptions, mailer)

	deps := routes.Deps{
		JWTSecret:       cfg.JWTSecret,
		Users:           users,
		Events:          events,
		Registrations:   registrations,
		Calendar:        calendar,
		Subscriptions:   subscriptions,
		Courses:         courses,
		RegistrationSvc: registrationSvc,
		ReviewSvc:       reviewSvc,
		ScholarshipSvc:  scholarshipSvc,
		Mailer:          mailer,
	}

	// Daily scholarship reminder sweep
	cronJob, err := scheduler.Start(reminderSvc, cfg.ReminderTZ, cfg.AppEnv)
	if err != nil {
		log.Fatalf("scheduler start failed: %v", err)
	}
	defer cronJob.Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Static("/uploads", "./uploads")

	// Public surface
	routes.SetupAuth(app, deps)
	routes.SetupEventsPublic(app, deps)
	routes.SetupScholarshipsPublic(app, deps)
	routes.SetupCoursesPublic(app, deps)

	// Everything below requires a valid token
	app.Use(middleware.RequireAuth(cfg.JWTSecret))

	routes.SetupAuthProtected(app, deps)
	routes.SetupEvents(app, deps)
	routes.SetupScholarships(app, deps)
	routes.SetupCourses(app, deps)
	routes.SetupAdmin(app, deps)

	log.Fatal(app.Listen(":" + cfg.Port))
}
