package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Subscription struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	Active    bool          `bson:"active" json:"active"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

type UserReminder struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email              string        `bson:"email" json:"email"`
	ScholarshipID      bson.ObjectID `bson:"scholarship_id" json:"scholarship_id"`
	ReminderDaysBefore int           `bson:"reminder_days_before" json:"reminder_days_before"`
	Reminded           bool          `bson:"reminded" json:"reminded"`
	CreatedAt          time.Time     `bson:"created_at" json:"created_at"`
}
