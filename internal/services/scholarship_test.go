package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"smartscholar/dto"
	"smartscholar/internal/httperr"
	"smartscholar/internal/models"
)

func TestComputeCalendarStatus(t *testing.T) {
	opening := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	closing := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		now     time.Time
		closing *time.Time
		want    string
	}{
		{"before opening", opening.Add(-24 * time.Hour), &closing, models.CalendarUpcoming},
		{"between opening and closing", opening.Add(10 * 24 * time.Hour), &closing, models.CalendarOpen},
		{"after closing", closing.Add(24 * time.Hour), &closing, models.CalendarClosed},
		{"on the opening instant", opening, &closing, models.CalendarOpen},
		{"no closing date stays open", closing.Add(365 * 24 * time.Hour), nil, models.CalendarOpen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeCalendarStatus(tc.now, opening, tc.closing))
		})
	}
}

func newScholarshipFixture(entries ...*models.ScholarshipEntry) (*ScholarshipService, *fakeCalendarStore) {
	store := newFakeCalendarStore(entries...)
	svc := NewScholarshipService(store)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func TestScholarshipCreateDerivesStatus(t *testing.T) {
	svc, store := newScholarshipFixture()

	entry, err := svc.Create(context.Background(), dto.ScholarshipEntryRequest{
		University:      "Tribhuvan University",
		ScholarshipName: "Merit Scholarship",
		OpeningDate:     testNow.Add(30 * 24 * time.Hour),
		Year:            2026,
		Level:           models.LevelUndergraduate,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CalendarUpcoming, entry.Status)
	assert.False(t, entry.ReminderSent)
	assert.Len(t, store.entries, 1)
}

func TestScholarshipUpdateRecomputesStatus(t *testing.T) {
	entry := &models.ScholarshipEntry{
		ID:              bson.NewObjectID(),
		University:      "Kathmandu University",
		ScholarshipName: "Dean's List Award",
		OpeningDate:     testNow.Add(10 * 24 * time.Hour),
		Year:            2026,
		Level:           models.LevelPostgraduate,
		Status:          models.CalendarUpcoming,
	}
	svc, store := newScholarshipFixture(entry)

	// Moving the opening date into the past flips the entry to open.
	newOpening := testNow.Add(-24 * time.Hour)
	updated, err := svc.Update(context.Background(), entry.ID, dto.ScholarshipUpdateRequest{
		OpeningDate: &newOpening,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CalendarOpen, updated.Status)
	assert.Equal(t, models.CalendarOpen, store.entries[entry.ID].Status)
}

func TestScholarshipUpdateRejectsInvalidLevel(t *testing.T) {
	entry := &models.ScholarshipEntry{
		ID:          bson.NewObjectID(),
		University:  "Kathmandu University",
		OpeningDate: testNow.Add(10 * 24 * time.Hour),
		Level:       models.LevelPostgraduate,
		Status:      models.CalendarUpcoming,
	}
	svc, store := newScholarshipFixture(entry)

	bogus := "doctorate"
	_, err := svc.Update(context.Background(), entry.ID, dto.ScholarshipUpdateRequest{
		Level: &bogus,
	})
	var he *httperr.E
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, models.LevelPostgraduate, store.entries[entry.ID].Level)
}

func TestScholarshipUpdateUnknownEntry(t *testing.T) {
	svc, _ := newScholarshipFixture()

	_, err := svc.Update(context.Background(), bson.NewObjectID(), dto.ScholarshipUpdateRequest{})
	var he *httperr.E
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)
}

func TestScholarshipListRecomputesAndFilters(t *testing.T) {
	closed := testNow.Add(-24 * time.Hour)
	entries := []*models.ScholarshipEntry{
		{
			ID: bson.NewObjectID(), University: "TU", ScholarshipName: "A",
			OpeningDate: testNow.Add(5 * 24 * time.Hour),
			Year:        2026, Level: models.LevelUndergraduate,
			Status: models.CalendarUpcoming,
		},
		{
			ID: bson.NewObjectID(), University: "KU", ScholarshipName: "B",
			OpeningDate: testNow.Add(-5 * 24 * time.Hour), ClosingDate: &closed,
			Year: 2026, Level: models.LevelUndergraduate,
			// Stale stored status; the read must report closed.
			Status: models.CalendarOpen,
		},
	}
	svc, _ := newScholarshipFixture(entries...)

	all, err := svc.List(context.Background(), dto.CalendarListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, e := range all {
		if e.ScholarshipName == "B" {
			assert.Equal(t, models.CalendarClosed, e.Status)
		}
	}

	upcoming, err := svc.List(context.Background(), dto.CalendarListQuery{Status: models.CalendarUpcoming})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "A", upcoming[0].ScholarshipName)
}

func TestScholarshipDelete(t *testing.T) {
	entry := &models.ScholarshipEntry{
		ID:          bson.NewObjectID(),
		University:  "PU",
		OpeningDate: testNow,
	}
	svc, store := newScholarshipFixture(entry)

	require.NoError(t, svc.Delete(context.Background(), entry.ID))
	assert.Empty(t, store.entries)

	err := svc.Delete(context.Background(), entry.ID)
	var he *httperr.E
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 404, he.Status)
}
