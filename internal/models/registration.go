package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type TeamMember struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type EventRegistration struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   bson.ObjectID `bson:"event_id" json:"event_id"`
	StudentID bson.ObjectID `bson:"student_id" json:"student_id"`

	Phone          string `bson:"phone" json:"phone"`
	Institution    string `bson:"institution" json:"institution"`
	EducationLevel string `bson:"education_level" json:"education_level"`

	IsTeamRegistration bool         `bson:"is_team_registration" json:"is_team_registration"`
	TeamName           string       `bson:"team_name,omitempty" json:"team_name,omitempty"`
	TeamMembers        []TeamMember `bson:"team_members,omitempty" json:"team_members,omitempty"`

	PaymentStatus string  `bson:"payment_status" json:"payment_status"` // pending, completed, failed
	PaymentAmount float64 `bson:"payment_amount" json:"payment_amount"`
	TransactionID string  `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`

	Status          string         `bson:"status" json:"status"` // pending, approved, rejected
	ReviewedBy      *bson.ObjectID `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time     `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	RejectionReason string         `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`

	AdditionalNotes string `bson:"additional_notes,omitempty" json:"additional_notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TotalTeamSize is the registering student plus any listed members.
func (r *EventRegistration) TotalTeamSize() int {
	return len(r.TeamMembers) + 1
}
