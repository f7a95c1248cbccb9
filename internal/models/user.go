package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleStudent = "student"
	RoleCollege = "college"
	RoleAdmin   = "admin"
)

const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	Role         string        `bson:"role" json:"role"` // student, college, admin

	// College fields
	CollegeName        string `bson:"college_name,omitempty" json:"college_name,omitempty"`
	VerificationStatus string `bson:"verification_status,omitempty" json:"verification_status,omitempty"` // pending, approved, rejected

	// Student fields
	Institution    string `bson:"institution,omitempty" json:"institution,omitempty"`
	EducationLevel string `bson:"education_level,omitempty" json:"education_level,omitempty"`
	Phone          string `bson:"phone,omitempty" json:"phone,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Viewer is the authenticated caller as seen by handlers, resolved by the
// auth middleware from JWT claims.
type Viewer struct {
	ID                 bson.ObjectID
	Role               string
	VerificationStatus string
}
