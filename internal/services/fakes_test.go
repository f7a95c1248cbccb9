package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartscholar/dto"
	"smartscholar/internal/models"
)

// In-memory stand-ins for the mongo repositories.

type fakeEventStore struct {
	events map[bson.ObjectID]*models.Event
}

func newFakeEventStore(events ...*models.Event) *fakeEventStore {
	s := &fakeEventStore{events: map[bson.ObjectID]*models.Event{}}
	for _, e := range events {
		s.events[e.ID] = e
	}
	return s
}

func (s *fakeEventStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	out := *e
	return &out, nil
}

func (s *fakeEventStore) ClaimSeat(_ context.Context, id bson.ObjectID) (bool, error) {
	e, ok := s.events[id]
	if !ok {
		return false, nil
	}
	if e.MaxParticipants > 0 && e.CurrentParticipants >= e.MaxParticipants {
		return false, nil
	}
	e.CurrentParticipants++
	return true, nil
}

func (s *fakeEventStore) ReleaseSeat(_ context.Context, id bson.ObjectID) error {
	if e, ok := s.events[id]; ok && e.CurrentParticipants > 0 {
		e.CurrentParticipants--
	}
	return nil
}

type fakeRegistrationStore struct {
	regs      map[bson.ObjectID]*models.EventRegistration
	insertErr error
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{regs: map[bson.ObjectID]*models.EventRegistration{}}
}

func (s *fakeRegistrationStore) Insert(_ context.Context, reg models.EventRegistration) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.regs[reg.ID] = &reg
	return nil
}

func (s *fakeRegistrationStore) FindByID(_ context.Context, id bson.ObjectID) (*models.EventRegistration, error) {
	r, ok := s.regs[id]
	if !ok {
		return nil, nil
	}
	out := *r
	return &out, nil
}

func (s *fakeRegistrationStore) FindByEventAndStudent(_ context.Context, eventID, studentID bson.ObjectID) (*models.EventRegistration, error) {
	for _, r := range s.regs {
		if r.EventID == eventID && r.StudentID == studentID {
			out := *r
			return &out, nil
		}
	}
	return nil, nil
}

func (s *fakeRegistrationStore) SetReview(_ context.Context, id bson.ObjectID, status string, reviewedBy bson.ObjectID, reviewedAt time.Time, rejectionReason string) error {
	r := s.regs[id]
	r.Status = status
	r.ReviewedBy = &reviewedBy
	r.ReviewedAt = &reviewedAt
	r.RejectionReason = rejectionReason
	return nil
}

func (s *fakeRegistrationStore) SetPayment(_ context.Context, id bson.ObjectID, status, transactionID string) error {
	r := s.regs[id]
	r.PaymentStatus = status
	if transactionID != "" {
		r.TransactionID = transactionID
	}
	return nil
}

func (s *fakeRegistrationStore) ListByEvent(_ context.Context, eventID bson.ObjectID, q dto.ApplicationListQuery) ([]models.EventRegistration, int, error) {
	var matched []models.EventRegistration
	for _, r := range s.regs {
		if r.EventID != eventID {
			continue
		}
		if q.Status != "" && r.Status != q.Status {
			continue
		}
		if q.PaymentStatus != "" && r.PaymentStatus != q.PaymentStatus {
			continue
		}
		if q.IsTeamRegistration != nil && r.IsTeamRegistration != *q.IsTeamRegistration {
			continue
		}
		matched = append(matched, *r)
	}

	total := len(matched)
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *fakeRegistrationStore) ListByStudent(_ context.Context, studentID bson.ObjectID) ([]models.EventRegistration, error) {
	var result []models.EventRegistration
	for _, r := range s.regs {
		if r.StudentID == studentID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (s *fakeRegistrationStore) Stats(_ context.Context, eventID bson.ObjectID) (dto.ApplicationStats, error) {
	var stats dto.ApplicationStats
	for _, r := range s.regs {
		if r.EventID != eventID {
			continue
		}
		stats.Total++
		switch r.Status {
		case models.RegistrationPending:
			stats.Pending++
		case models.RegistrationApproved:
			stats.Approved++
		case models.RegistrationRejected:
			stats.Rejected++
		}
		if r.IsTeamRegistration {
			stats.TeamRegistrations++
		} else {
			stats.Individual++
		}
		if r.PaymentStatus == models.PaymentCompleted {
			stats.PaymentsCompleted++
		}
	}
	return stats, nil
}

type fakeUserStore struct {
	users map[bson.ObjectID]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[bson.ObjectID]*models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

type fakeCalendarStore struct {
	entries map[bson.ObjectID]*models.ScholarshipEntry
}

func newFakeCalendarStore(entries ...*models.ScholarshipEntry) *fakeCalendarStore {
	s := &fakeCalendarStore{entries: map[bson.ObjectID]*models.ScholarshipEntry{}}
	for _, e := range entries {
		s.entries[e.ID] = e
	}
	return s
}

func (s *fakeCalendarStore) Insert(_ context.Context, entry models.ScholarshipEntry) error {
	s.entries[entry.ID] = &entry
	return nil
}

func (s *fakeCalendarStore) FindByID(_ context.Context, id bson.ObjectID) (*models.ScholarshipEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	out := *e
	return &out, nil
}

func (s *fakeCalendarStore) Save(_ context.Context, entry models.ScholarshipEntry) error {
	s.entries[entry.ID] = &entry
	return nil
}

func (s *fakeCalendarStore) Delete(_ context.Context, id bson.ObjectID) error {
	delete(s.entries, id)
	return nil
}

func (s *fakeCalendarStore) List(_ context.Context, level string, year int) ([]models.ScholarshipEntry, error) {
	var result []models.ScholarshipEntry
	for _, e := range s.entries {
		if level != "" && e.Level != level {
			continue
		}
		if year != 0 && e.Year != year {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (s *fakeCalendarStore) OpeningSoon(_ context.Context, from, to time.Time) ([]models.ScholarshipEntry, error) {
	var result []models.ScholarshipEntry
	for _, e := range s.entries {
		if e.Status != models.CalendarUpcoming || e.ReminderSent {
			continue
		}
		if e.OpeningDate.Before(from) || e.OpeningDate.After(to) {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (s *fakeCalendarStore) MarkReminded(_ context.Context, ids []bson.ObjectID) error {
	for _, id := range ids {
		if e, ok := s.entries[id]; ok {
			e.ReminderSent = true
		}
	}
	return nil
}

type fakeSubscriberStore struct {
	emails    []string
	reminders map[bson.ObjectID]*models.UserReminder
}

func (s *fakeSubscriberStore) ActiveEmails(_ context.Context) ([]string, error) {
	return s.emails, nil
}

func (s *fakeSubscriberStore) PendingReminders(_ context.Context) ([]models.UserReminder, error) {
	var pending []models.UserReminder
	for _, r := range s.reminders {
		if !r.Reminded {
			pending = append(pending, *r)
		}
	}
	return pending, nil
}

func (s *fakeSubscriberStore) MarkUserReminded(_ context.Context, ids []bson.ObjectID) error {
	for _, id := range ids {
		if r, ok := s.reminders[id]; ok {
			r.Reminded = true
		}
	}
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent    []sentMail
	failFor map[string]error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}
