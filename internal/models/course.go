package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Course struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CollegeID      bson.ObjectID `bson:"college_id" json:"college_id"`
	Name           string        `bson:"name" json:"name"`
	Description    string        `bson:"description,omitempty" json:"description,omitempty"`
	DurationMonths int           `bson:"duration_months" json:"duration_months"`
	Level          string        `bson:"level" json:"level"` // undergraduate, postgraduate, phd
	TuitionFee     float64       `bson:"tuition_fee" json:"tuition_fee"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}
