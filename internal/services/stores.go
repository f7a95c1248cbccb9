package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartscholar/dto"
	"smartscholar/internal/models"
)

// Store interfaces are satisfied by the mongo repositories and by the
// in-memory fakes used in tests.

type EventStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	ClaimSeat(ctx context.Context, id bson.ObjectID) (bool, error)
	ReleaseSeat(ctx context.Context, id bson.ObjectID) error
}

type RegistrationStore interface {
	Insert(ctx context.Context, reg models.EventRegistration) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.EventRegistration, error)
	FindByEventAndStudent(ctx context.Context, eventID, studentID bson.ObjectID) (*models.EventRegistration, error)
	SetReview(ctx context.Context, id bson.ObjectID, status string, reviewedBy bson.ObjectID, reviewedAt time.Time, rejectionReason string) error
	SetPayment(ctx context.Context, id bson.ObjectID, status, transactionID string) error
	ListByEvent(ctx context.Context, eventID bson.ObjectID, q dto.ApplicationListQuery) ([]models.EventRegistration, int, error)
	ListByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.EventRegistration, error)
	Stats(ctx context.Context, eventID bson.ObjectID) (dto.ApplicationStats, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
}

type CalendarStore interface {
	Insert(ctx context.Context, entry models.ScholarshipEntry) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.ScholarshipEntry, error)
	Save(ctx context.Context, entry models.ScholarshipEntry) error
	Delete(ctx context.Context, id bson.ObjectID) error
	List(ctx context.Context, level string, year int) ([]models.ScholarshipEntry, error)
	OpeningSoon(ctx context.Context, from, to time.Time) ([]models.ScholarshipEntry, error)
	MarkReminded(ctx context.Context, ids []bson.ObjectID) error
}

type SubscriberStore interface {
	ActiveEmails(ctx context.Context) ([]string, error)
	PendingReminders(ctx context.Context) ([]models.UserReminder, error)
	MarkUserReminded(ctx context.Context, ids []bson.ObjectID) error
}
