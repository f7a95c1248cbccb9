package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"smartscholar/dto"
	"smartscholar/internal/httperr"
	"smartscholar/internal/models"
)

// ComputeCalendarStatus derives an entry's status purely from the clock
// and its dates. Callers can never set the status directly.
func ComputeCalendarStatus(now, openingDate time.Time, closingDate *time.Time) string {
	if now.Before(openingDate) {
		return models.CalendarUpcoming
	}
	if closingDate != nil && now.After(*closingDate) {
		return models.CalendarClosed
	}
	return models.CalendarOpen
}

type ScholarshipService struct {
	calendar CalendarStore
	validate *validator.Validate
	now      func() time.Time
}

func NewScholarshipService(calendar CalendarStore) *ScholarshipService {
	return &ScholarshipService{
		calendar: calendar,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *ScholarshipService) Create(ctx context.Context, req dto.ScholarshipEntryRequest) (*models.ScholarshipEntry, error) {
	now := s.now()
	entry := models.ScholarshipEntry{
		ID:              bson.NewObjectID(),
		University:      req.University,
		ScholarshipName: req.ScholarshipName,
		OpeningDate:     req.OpeningDate,
		ClosingDate:     req.ClosingDate,
		Year:            req.Year,
		Level:           req.Level,
		Status:          ComputeCalendarStatus(now, req.OpeningDate, req.ClosingDate),
		ReminderSent:    false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.calendar.Insert(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.BadRequest("calendar entry already exists for this scholarship and opening date")
		}
		return nil, err
	}
	return &entry, nil
}

func (s *ScholarshipService) Update(ctx context.Context, id bson.ObjectID, req dto.ScholarshipUpdateRequest) (*models.ScholarshipEntry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, httperr.BadRequest(err.Error())
	}

	entry, err := s.calendar.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, httperr.NotFound("calendar entry not found")
	}

	if req.University != nil {
		entry.University = *req.University
	}
	if req.ScholarshipName != nil {
		entry.ScholarshipName = *req.ScholarshipName
	}
	if req.OpeningDate != nil {
		entry.OpeningDate = *req.OpeningDate
	}
	if req.ClosingDate != nil {
		entry.ClosingDate = req.ClosingDate
	}
	if req.Year != nil {
		entry.Year = *req.Year
	}
	if req.Level != nil {
		entry.Level = *req.Level
	}

	// Status is recomputed on every save.
	entry.Status = ComputeCalendarStatus(s.now(), entry.OpeningDate, entry.ClosingDate)

	if err := s.calendar.Save(ctx, *entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ScholarshipService) Delete(ctx context.Context, id bson.ObjectID) error {
	entry, err := s.calendar.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return httperr.NotFound("calendar entry not found")
	}
	return s.calendar.Delete(ctx, id)
}

// List recomputes the derived status at read time so stale stored values
// never leak out, then applies the optional status filter.
func (s *ScholarshipService) List(ctx context.Context, q dto.CalendarListQuery) ([]models.ScholarshipEntry, error) {
	entries, err := s.calendar.List(ctx, q.Level, q.Year)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]models.ScholarshipEntry, 0, len(entries))
	for _, e := range entries {
		e.Status = ComputeCalendarStatus(now, e.OpeningDate, e.ClosingDate)
		if q.Status != "" && e.Status != q.Status {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}
