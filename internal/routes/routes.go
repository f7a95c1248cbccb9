package routes

import (
	"smartscholar/internal/repository"
	"smartscholar/internal/services"
)

// Deps bundles everything the route groups need. Built once in main.
type Deps struct {
	JWTSecret string

	Users         *repository.UserRepo
	Events        *repository.EventRepo
	Registrations *repository.RegistrationRepo
	Calendar      *repository.ScholarshipRepo
	Subscriptions *repository.SubscriptionRepo
	Courses       *repository.CourseRepo

	RegistrationSvc *services.RegistrationService
	ReviewSvc       *services.ReviewService
	ScholarshipSvc  *services.ScholarshipService

	Mailer services.Mailer
}
