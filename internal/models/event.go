package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	EventDraft     = "draft"
	EventPublished = "published"
	EventCancelled = "cancelled"
)

type TeamSize struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

type Event struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	EventType   string        `bson:"event_type" json:"event_type"` // hackathon, workshop, seminar, fest, competition

	StartDate            time.Time `bson:"start_date" json:"start_date"`
	EndDate              time.Time `bson:"end_date" json:"end_date"`
	RegistrationDeadline time.Time `bson:"registration_deadline" json:"registration_deadline"`

	Venue    string `bson:"venue,omitempty" json:"venue,omitempty"`
	IsOnline bool   `bson:"is_online" json:"is_online"`

	RegistrationFee float64 `bson:"registration_fee" json:"registration_fee"`

	// MaxParticipants == 0 means unlimited. CurrentParticipants counts
	// submitted registrations and is only ever mutated through the
	// ClaimSeat/ReleaseSeat atomic updates.
	MaxParticipants     int `bson:"max_participants" json:"max_participants"`
	CurrentParticipants int `bson:"current_participants" json:"current_participants"`

	TeamSize *TeamSize `bson:"team_size,omitempty" json:"team_size,omitempty"`

	Status    string        `bson:"status" json:"status"` // draft, published, cancelled
	BannerURL string        `bson:"banner_url,omitempty" json:"banner_url,omitempty"`
	CreatedBy bson.ObjectID `bson:"created_by" json:"created_by"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
