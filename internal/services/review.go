package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartscholar/dto"
	"smartscholar/internal/httperr"
	"smartscholar/internal/models"
	"smartscholar/internal/policy"
)

// ReviewService lets the owning college transition an application's
// status. The ledger write is authoritative and synchronous; the student
// email afterwards is best-effort.
type ReviewService struct {
	events EventStore
	regs   RegistrationStore
	users  UserStore
	mailer Mailer
	now    func() time.Time
}

func NewReviewService(events EventStore, regs RegistrationStore, users UserStore, mailer Mailer) *ReviewService {
	return &ReviewService{
		events: events,
		regs:   regs,
		users:  users,
		mailer: mailer,
		now:    time.Now,
	}
}

// load fetches the application and its event and verifies the viewer owns
// that event.
func (s *ReviewService) load(ctx context.Context, viewer models.Viewer, appID bson.ObjectID) (*models.EventRegistration, *models.Event, error) {
	reg, err := s.regs.FindByID(ctx, appID)
	if err != nil {
		return nil, nil, err
	}
	if reg == nil {
		return nil, nil, httperr.NotFound("application not found")
	}

	event, err := s.events.FindByID(ctx, reg.EventID)
	if err != nil {
		return nil, nil, err
	}
	if event == nil {
		return nil, nil, httperr.NotFound("event not found")
	}

	if err := policy.RequireEventOwner(viewer, event); err != nil {
		return nil, nil, err
	}
	return reg, event, nil
}

func (s *ReviewService) Approve(ctx context.Context, viewer models.Viewer, appID bson.ObjectID) (*models.EventRegistration, error) {
	reg, event, err := s.load(ctx, viewer, appID)
	if err != nil {
		return nil, err
	}
	if reg.Status == models.RegistrationApproved {
		return nil, httperr.BadRequest("application already approved")
	}
	// A rejected application stays rejected; its seat was released at
	// rejection and there is no transition back.
	if reg.Status == models.RegistrationRejected {
		return nil, httperr.BadRequest("application already rejected")
	}

	reviewedAt := s.now()
	if err := s.regs.SetReview(ctx, appID, models.RegistrationApproved, viewer.ID, reviewedAt, ""); err != nil {
		return nil, err
	}

	reg.Status = models.RegistrationApproved
	reg.ReviewedBy = &viewer.ID
	reg.ReviewedAt = &reviewedAt
	reg.RejectionReason = ""

	s.notify(ctx, reg.StudentID, func(name string) (string, string) {
		return approvalEmail(name, event.Title)
	})
	return reg, nil
}

func (s *ReviewService) Reject(ctx context.Context, viewer models.Viewer, appID bson.ObjectID, reason string) (*models.EventRegistration, error) {
	if reason == "" {
		return nil, httperr.BadRequest("rejection reason is required")
	}

	reg, event, err := s.load(ctx, viewer, appID)
	if err != nil {
		return nil, err
	}
	if reg.Status == models.RegistrationRejected {
		return nil, httperr.BadRequest("application already rejected")
	}

	// An approved application holds a seat; rejecting it releases that
	// seat again. A pending application keeps its submission slot.
	if reg.Status == models.RegistrationApproved {
		if err := s.events.ReleaseSeat(ctx, event.ID); err != nil {
			return nil, err
		}
	}

	reviewedAt := s.now()
	if err := s.regs.SetReview(ctx, appID, models.RegistrationRejected, viewer.ID, reviewedAt, reason); err != nil {
		return nil, err
	}

	reg.Status = models.RegistrationRejected
	reg.ReviewedBy = &viewer.ID
	reg.ReviewedAt = &reviewedAt
	reg.RejectionReason = reason

	s.notify(ctx, reg.StudentID, func(name string) (string, string) {
		return rejectionEmail(name, event.Title, reason)
	})
	return reg, nil
}

func (s *ReviewService) UpdatePayment(ctx context.Context, viewer models.Viewer, appID bson.ObjectID, req dto.PaymentUpdateRequest) (*models.EventRegistration, error) {
	reg, _, err := s.load(ctx, viewer, appID)
	if err != nil {
		return nil, err
	}

	if err := s.regs.SetPayment(ctx, appID, req.PaymentStatus, req.TransactionID); err != nil {
		return nil, err
	}

	reg.PaymentStatus = req.PaymentStatus
	if req.TransactionID != "" {
		reg.TransactionID = req.TransactionID
	}
	return reg, nil
}

// ListApplications returns one page of an event's applications plus
// statistics aggregated over all of them.
func (s *ReviewService) ListApplications(ctx context.Context, viewer models.Viewer, eventID bson.ObjectID, q dto.ApplicationListQuery) (*dto.ApplicationPage, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, httperr.NotFound("event not found")
	}
	if err := policy.RequireEventOwner(viewer, event); err != nil {
		return nil, err
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}

	regs, total, err := s.regs.ListByEvent(ctx, eventID, q)
	if err != nil {
		return nil, err
	}

	stats, err := s.regs.Stats(ctx, eventID)
	if err != nil {
		return nil, err
	}

	totalPages := (total + q.Limit - 1) / q.Limit
	return &dto.ApplicationPage{
		Applications: regs,
		Stats:        stats,
		Page:         q.Page,
		Limit:        q.Limit,
		TotalPages:   totalPages,
	}, nil
}

// notify emails the student about a review decision. Failures are logged
// and never returned: the ledger state is already committed.
func (s *ReviewService) notify(ctx context.Context, studentID bson.ObjectID, build func(name string) (subject, body string)) {
	student, err := s.users.FindByID(ctx, studentID)
	if err != nil || student == nil {
		log.Printf("review notify: could not load student %s: %v", studentID.Hex(), err)
		return
	}
	subject, body := build(student.Name)
	if err := s.mailer.Send(student.Email, subject, body); err != nil {
		log.Printf("review notify: email to %s failed: %v", student.Email, err)
	}
}
