package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"smartscholar/dto"
	"smartscholar/internal/httperr"
	"smartscholar/internal/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testEvent(college bson.ObjectID, mutate ...func(*models.Event)) *models.Event {
	e := &models.Event{
		ID:                   bson.NewObjectID(),
		Title:                "Intercollege Hackathon",
		EventType:            "hackathon",
		StartDate:            testNow.Add(14 * 24 * time.Hour),
		EndDate:              testNow.Add(15 * 24 * time.Hour),
		RegistrationDeadline: testNow.Add(7 * 24 * time.Hour),
		Status:               models.EventPublished,
		CreatedBy:            college,
	}
	for _, m := range mutate {
		m(e)
	}
	return e
}

func testCollege() *models.User {
	return &models.User{
		ID:                 bson.NewObjectID(),
		Name:               "Pulchowk Campus",
		Email:              "admin@pulchowk.edu",
		Role:               models.RoleCollege,
		VerificationStatus: models.VerificationApproved,
	}
}

func newRegistrationFixture(event *models.Event, college *models.User) (*RegistrationService, *fakeEventStore, *fakeRegistrationStore) {
	events := newFakeEventStore(event)
	regs := newFakeRegistrationStore()
	svc := NewRegistrationService(events, regs, newFakeUserStore(college))
	svc.now = func() time.Time { return testNow }
	return svc, events, regs
}

func validApply() dto.ApplyRequest {
	return dto.ApplyRequest{
		Phone:          "9800000000",
		Institution:    "Thapathali Campus",
		EducationLevel: "undergraduate",
	}
}

func TestApplySucceedsAndClaimsSeat(t *testing.T) {
	college := testCollege()
	event := testEvent(college.ID, func(e *models.Event) { e.MaxParticipants = 10 })
	svc, events, regs := newRegistrationFixture(event, college)
	student := bson.NewObjectID()

	reg, err := svc.Apply(context.Background(), student, event.ID, validApply())
	require.NoError(t, err)

	assert.Equal(t, models.RegistrationPending, reg.Status)
	assert.Equal(t, event.ID, reg.EventID)
	assert.Equal(t, student, reg.StudentID)
	assert.Equal(t, 1, events.events[event.ID].CurrentParticipants)
	assert.Len(t, regs.regs, 1)
}

func TestApplyPaymentDefaulting(t *testing.T) {
	t.Run("paid event starts with a pending payment for the fee", func(t *testing.T) {
		college := testCollege()
		event := testEvent(college.ID, func(e *models.Event) { e.RegistrationFee = 500 })
		svc, _, _ := newRegistrationFixture(event, college)

		reg, err := svc.Apply(context.Background(), bson.NewObjectID(), event.ID, validApply())
		require.NoError(t, err)
		assert.Equal(t, models.PaymentPending, reg.PaymentStatus)
		assert.Equal(t, 500.0, reg.PaymentAmount)
	})

	t.Run("free event is completed immediately", func(t *testing.T) {
		college := testCollege()
		event := testEvent(college.ID)
		svc, _, _ := newRegistrationFixture(event, college)

		reg, err := svc.Apply(context.Background(), bson.NewObjectID(), event.ID, validApply())
		require.NoError(t, err)
		assert.Equal(t, models.PaymentCompleted, reg.PaymentStatus)
		assert.Zero(t, reg.PaymentAmount)
	})
}

func TestApplyRejectsIneligibleEvents(t *testing.T) {
	college := testCollege()

	cases := []struct {
		name    string
		event   *models.Event
		college *models.User
		wantMsg string
	}{
		{
			name:    "draft event",
			event:   testEvent(college.ID, func(e *models.Event) { e.Status = models.EventDraft }),
			college: college,
			wantMsg: "not open for registration",
		},
		{
			name:    "cancelled event",
			event:   testEvent(college.ID, func(e *models.Event) { e.Status = models.EventCancelled }),
			college: college,
			wantMsg: "not open for registration",
		},
		{
			name:  "unverified college",
			event: testEvent(college.ID),
			college: &models.User{
				ID:                 college.ID,
				Role:               models.RoleCollege,
				VerificationStatus: models.VerificationPending,
			},
			wantMsg: "not verified",
		},
		{
			name: "deadline passed",
			event: testEvent(college.ID, func(e *models.Event) {
				e.RegistrationDeadline = testNow.Add(-time.Hour)
			}),
			college: college,
			wantMsg: "deadline has passed",
		},
		{
			name: "event full",
			event: testEvent(college.ID, func(e *models.Event) {
				e.MaxParticipants = 2
				e.CurrentParticipants = 2
			}),
			college: college,
			wantMsg: "event is full",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, events, _ := newRegistrationFixture(tc.event, tc.college)

			_, err := svc.Apply(context.Background(), bson.NewObjectID(), tc.event.ID, validApply())
			require.Error(t, err)

			var he *httperr.E
			require.ErrorAs(t, err, &he)
			assert.Equal(t, 400, he.Status)
			assert.Contains(t, he.Message, tc.wantMsg)
			assert.Equal(t, tc.event.CurrentParticipants, events.events[tc.event.ID].CurrentParticipants)
		})
	}
}

func TestApplyUnknownEventIs404(t *testing.T) {
	college := testCollege()
	svc, _, _ := newRegistrationFixture(testEvent(college.ID), college)

	_, err := svc.Apply(context.Background(), bson.NewObjectID(), bson.NewObjectID(), validApply())
	var he *httperr.E
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)
}

func TestApplyRejectsDuplicateRegistration(t *testing.T) {
	college := testCollege()
	event := testEvent(college.ID)
	svc, events, _ := newRegistrationFixture(event, college)
	student := bson.NewObjectID()

	_, err := svc.Apply(context.Background(), student, event.ID, validApply())
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), student, event.ID, validApply())
	var he *httperr.E
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 400, he.Status)
	assert.Contains(t, he.Message, "already registered")
	assert.Equal(t, 1, events.events[event.ID].CurrentParticipants)
}

func TestApplyZeroMaxParticipantsIsUnlimited(t *testing.T) {
	college := testCollege()
	event := testEvent(college.ID, func(e *models.Event) {
		e.MaxParticipants = 0
		e.CurrentParticipants = 9999
	})
	svc, _, _ := newRegistrationFixture(event, college)

	_, err := svc.Apply(context.Background(), bson.NewObjectID(), event.ID, validApply())
	assert.NoError(t, err)
}

func TestApplyTeamValidation(t *testing.T) {
	members := func(n int) []models.TeamMember {
		out := make([]models.TeamMember, n)
		for i := range out {
			out[i] = models.TeamMember{Name: "Member", Email: "member@example.com"}
		}
		return out
	}

	cases := []struct {
		name    string
		req     dto.ApplyRequest
		wantErr string
	}{
		{
			name: "missing team name",
			req: dto.ApplyRequest{
				IsTeamRegistration: true, TeamMembers: members(1),
			},
			wantErr: "team name is required",
		},
		{
			name: "no members listed",
			req: dto.ApplyRequest{
				IsTeamRegistration: true, TeamName: "Deadline Drivers",
			},
			wantErr: "at least one team member",
		},
		{
			name: "member with invalid email",
			req: dto.ApplyRequest{
				IsTeamRegistration: true, TeamName: "Deadline Drivers",
				TeamMembers: []models.TeamMember{{Name: "Asha", Email: "not-an-email"}},
			},
			wantErr: "invalid email",
		},
		{
			name: "below minimum team size",
			req: dto.ApplyRequest{
				// 0 extra members would already fail above; 1 member makes
				// a total of 2 against a minimum of 3.
				IsTeamRegistration: true, TeamName: "Deadline Drivers",
				TeamMembers: members(1),
			},
			wantErr: "team size must be between 3 and 5",
		},
		{
			name: "above maximum team size",
			req: dto.ApplyRequest{
				IsTeamRegistration: true, TeamName: "Deadline Drivers",
				TeamMembers: members(5),
			},
			wantErr: "team size must be between 3 and 5",
		},
		{
			name: "within bounds",
			req: dto.ApplyRequest{
				IsTeamRegistration: true, TeamName: "Deadline Drivers",
				TeamMembers: members(3),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			college := testCollege()
			event := testEvent(college.ID, func(e *models.Event) {
				e.TeamSize = &models.TeamSize{Min: 3, Max: 5}
			})
			svc, _, _ := newRegistrationFixture(event, college)

			tc.req.Phone = "9800000000"
			tc.req.Institution = "Thapathali Campus"
			tc.req.EducationLevel = "undergraduate"

			reg, err := svc.Apply(context.Background(), bson.NewObjectID(), event.ID, tc.req)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, 4, reg.TotalTeamSize())
				return
			}
			var he *httperr.E
			require.ErrorAs(t, err, &he)
			assert.Contains(t, he.Message, tc.wantErr)
		})
	}
}

func TestApplyReleasesSeatWhenInsertFails(t *testing.T) {
	college := testCollege()
	event := testEvent(college.ID, func(e *models.Event) { e.MaxParticipants = 10 })
	svc, events, regs := newRegistrationFixture(event, college)
	regs.insertErr = errors.New("write failed")

	_, err := svc.Apply(context.Background(), bson.NewObjectID(), event.ID, validApply())
	require.Error(t, err)
	assert.Equal(t, 0, events.events[event.ID].CurrentParticipants)
	assert.Empty(t, regs.regs)
}

func TestMyApplicationsIncludesEvent(t *testing.T) {
	college := testCollege()
	event := testEvent(college.ID)
	svc, _, _ := newRegistrationFixture(event, college)
	student := bson.NewObjectID()

	_, err := svc.Apply(context.Background(), student, event.ID, validApply())
	require.NoError(t, err)

	apps, err := svc.MyApplications(context.Background(), student)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].Event)
	assert.Equal(t, event.Title, apps[0].Event.Title)

	other, err := svc.MyApplications(context.Background(), bson.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, other)
}
