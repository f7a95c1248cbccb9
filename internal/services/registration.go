package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"smartscholar/dto"
	"smartscholar/internal/httperr"
	"smartscholar/internal/models"
)

// RegistrationService handles the application intake: it enforces every
// eligibility rule before a registration is persisted, and claims the
// event seat atomically so capacity cannot be overshot by concurrent
// applies.
type RegistrationService struct {
	events   EventStore
	regs     RegistrationStore
	users    UserStore
	validate *validator.Validate
	now      func() time.Time
}

func NewRegistrationService(events EventStore, regs RegistrationStore, users UserStore) *RegistrationService {
	return &RegistrationService{
		events:   events,
		regs:     regs,
		users:    users,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Apply checks the preconditions in a fixed order so a caller always gets
// the most specific failure, then claims a seat and persists the
// registration. A failed insert releases the claimed seat again, so there
// are no partial writes.
func (s *RegistrationService) Apply(ctx context.Context, studentID, eventID bson.ObjectID, req dto.ApplyRequest) (*models.EventRegistration, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, httperr.NotFound("event not found")
	}
	if event.Status != models.EventPublished {
		return nil, httperr.BadRequest("event is not open for registration")
	}

	college, err := s.users.FindByID(ctx, event.CreatedBy)
	if err != nil {
		return nil, err
	}
	if college == nil || college.VerificationStatus != models.VerificationApproved {
		return nil, httperr.BadRequest("the event's college is not verified")
	}

	now := s.now()
	if now.After(event.RegistrationDeadline) {
		return nil, httperr.BadRequest("registration deadline has passed")
	}
	if event.MaxParticipants > 0 && event.CurrentParticipants >= event.MaxParticipants {
		return nil, httperr.BadRequest("event is full")
	}

	existing, err := s.regs.FindByEventAndStudent(ctx, eventID, studentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.BadRequest("you have already registered for this event")
	}

	if req.IsTeamRegistration {
		if err := s.validateTeam(event, req); err != nil {
			return nil, err
		}
	}

	reg := models.EventRegistration{
		ID:                 bson.NewObjectID(),
		EventID:            eventID,
		StudentID:          studentID,
		Phone:              req.Phone,
		Institution:        req.Institution,
		EducationLevel:     req.EducationLevel,
		IsTeamRegistration: req.IsTeamRegistration,
		TeamName:           req.TeamName,
		TeamMembers:        req.TeamMembers,
		AdditionalNotes:    req.AdditionalNotes,
		Status:             models.RegistrationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// Paid events start with a pending payment for the full fee; free
	// events are completed immediately.
	if event.RegistrationFee > 0 {
		reg.PaymentStatus = models.PaymentPending
		reg.PaymentAmount = event.RegistrationFee
	} else {
		reg.PaymentStatus = models.PaymentCompleted
		reg.PaymentAmount = 0
	}

	claimed, err := s.events.ClaimSeat(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, httperr.BadRequest("event is full")
	}

	if err := s.regs.Insert(ctx, reg); err != nil {
		// Give the seat back so a failed insert leaves no trace.
		if relErr := s.events.ReleaseSeat(ctx, eventID); relErr != nil {
			return nil, relErr
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.BadRequest("you have already registered for this event")
		}
		return nil, err
	}

	return &reg, nil
}

func (s *RegistrationService) validateTeam(event *models.Event, req dto.ApplyRequest) error {
	if req.TeamName == "" {
		return httperr.BadRequest("team name is required for team registration")
	}
	if len(req.TeamMembers) == 0 {
		return httperr.BadRequest("at least one team member is required")
	}
	for i, m := range req.TeamMembers {
		if m.Name == "" {
			return httperr.BadRequest(fmt.Sprintf("team member %d is missing a name", i+1))
		}
		if err := s.validate.Var(m.Email, "required,email"); err != nil {
			return httperr.BadRequest(fmt.Sprintf("team member %d has an invalid email", i+1))
		}
	}
	if ts := event.TeamSize; ts != nil {
		total := len(req.TeamMembers) + 1
		if total < ts.Min || total > ts.Max {
			return httperr.BadRequest(fmt.Sprintf("team size must be between %d and %d including you", ts.Min, ts.Max))
		}
	}
	return nil
}

// MyApplications returns the student's registrations together with their
// events.
func (s *RegistrationService) MyApplications(ctx context.Context, studentID bson.ObjectID) ([]dto.MyApplication, error) {
	regs, err := s.regs.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MyApplication, 0, len(regs))
	for _, reg := range regs {
		event, err := s.events.FindByID(ctx, reg.EventID)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.MyApplication{Registration: reg, Event: event})
	}
	return result, nil
}
