package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CalendarUpcoming = "upcoming"
	CalendarOpen     = "open"
	CalendarClosed   = "closed"
)

const (
	LevelUndergraduate = "undergraduate"
	LevelPostgraduate  = "postgraduate"
	LevelPhD           = "phd"
	LevelAll           = "all"
)

type ScholarshipEntry struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	University      string        `bson:"university" json:"university"`
	ScholarshipName string        `bson:"scholarship_name" json:"scholarship_name"`

	OpeningDate time.Time  `bson:"opening_date" json:"opening_date"`
	ClosingDate *time.Time `bson:"closing_date,omitempty" json:"closing_date,omitempty"`

	Year  int    `bson:"year" json:"year"`
	Level string `bson:"level" json:"level"` // undergraduate, postgraduate, phd, all

	// Status is derived from the dates on every save and on read; callers
	// never set it directly.
	Status string `bson:"status" json:"status"` // upcoming, open, closed

	ReminderSent bool `bson:"reminder_sent" json:"reminder_sent"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
