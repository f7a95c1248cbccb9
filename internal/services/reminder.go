package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartscholar/internal/models"
)

// ReminderService runs the daily scholarship-opening sweeps. Every active
// subscriber gets one consolidated email per sweep; each calendar entry is
// reminded at most once in total because both sweeps share the single
// reminder_sent flag.
type ReminderService struct {
	calendar    CalendarStore
	subscribers SubscriberStore
	mailer      Mailer

	// SendDelay throttles consecutive sends; it is a throughput limit,
	// not a correctness mechanism.
	SendDelay time.Duration

	now func() time.Time
}

func NewReminderService(calendar CalendarStore, subscribers SubscriberStore, mailer Mailer) *ReminderService {
	return &ReminderService{
		calendar:    calendar,
		subscribers: subscribers,
		mailer:      mailer,
		SendDelay:   500 * time.Millisecond,
		now:         time.Now,
	}
}

// CheckAndRemind runs the 7-day sweep and then the 1-day sweep. The sweeps
// are independent passes over the calendar; whichever finds an entry first
// consumes it.
func (s *ReminderService) CheckAndRemind(ctx context.Context) {
	if err := s.SendAllReminders(ctx, 7); err != nil {
		log.Printf("reminder: 7-day sweep failed: %v", err)
	}
	if err := s.SendAllReminders(ctx, 1); err != nil {
		log.Printf("reminder: 1-day sweep failed: %v", err)
	}
	if err := s.SendUserReminders(ctx); err != nil {
		log.Printf("reminder: personal sweep failed: %v", err)
	}
}

// SendAllReminders selects every un-reminded upcoming scholarship opening
// within the next daysBefore days, emails all active subscribers one
// consolidated message, and marks the batch as reminded. Per-recipient
// failures are logged and do not abort the batch or unmark the entries.
func (s *ReminderService) SendAllReminders(ctx context.Context, daysBefore int) error {
	now := s.now()
	to := now.Add(time.Duration(daysBefore) * 24 * time.Hour)

	entries, err := s.calendar.OpeningSoon(ctx, now, to)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	emails, err := s.subscribers.ActiveEmails(ctx)
	if err != nil {
		return err
	}

	subject, body := reminderEmail(entries)
	for i, email := range emails {
		if err := s.mailer.Send(email, subject, body); err != nil {
			log.Printf("reminder: email to %s failed: %v", email, err)
		}
		if s.SendDelay > 0 && i < len(emails)-1 {
			time.Sleep(s.SendDelay)
		}
	}

	ids := make([]bson.ObjectID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return s.calendar.MarkReminded(ctx, ids)
}

// SendUserReminders fires the per-scholarship reminders requested through
// the remind-me endpoint. Each request fires at most once, on the first
// sweep where the opening falls within the requested lead time. These
// run independently of the broadcast sweeps and their flag.
func (s *ReminderService) SendUserReminders(ctx context.Context) error {
	pending, err := s.subscribers.PendingReminders(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	var fired []bson.ObjectID
	for _, rem := range pending {
		entry, err := s.calendar.FindByID(ctx, rem.ScholarshipID)
		if err != nil {
			return err
		}
		if entry == nil || !entry.OpeningDate.After(now) {
			// Entry deleted or already open; retire the request.
			fired = append(fired, rem.ID)
			continue
		}

		lead := time.Duration(rem.ReminderDaysBefore) * 24 * time.Hour
		if entry.OpeningDate.After(now.Add(lead)) {
			continue
		}

		subject, body := reminderEmail([]models.ScholarshipEntry{*entry})
		if err := s.mailer.Send(rem.Email, subject, body); err != nil {
			// Stays pending, so the next sweep retries it.
			log.Printf("reminder: email to %s failed: %v", rem.Email, err)
			continue
		}
		fired = append(fired, rem.ID)
	}
	return s.subscribers.MarkUserReminded(ctx, fired)
}
