package dto

import (
	"time"

	"smartscholar/internal/models"
)

type EventCreateRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	EventType   string `json:"event_type" form:"event_type" validate:"required,oneof=hackathon workshop seminar fest competition"`

	StartDate            time.Time `json:"start_date" form:"start_date" validate:"required"`
	EndDate              time.Time `json:"end_date" form:"end_date" validate:"required"`
	RegistrationDeadline time.Time `json:"registration_deadline" form:"registration_deadline" validate:"required"`

	Venue    string `json:"venue" form:"venue"`
	IsOnline bool   `json:"is_online" form:"is_online"`

	RegistrationFee float64 `json:"registration_fee" form:"registration_fee" validate:"gte=0"`
	MaxParticipants int     `json:"max_participants" form:"max_participants" validate:"gte=0"`

	TeamSize *models.TeamSize `json:"team_size,omitempty" form:"-"`

	Status string `json:"status" form:"status"` // defaults to draft
}

type EventUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	EventType   *string `json:"event_type,omitempty"`

	StartDate            *time.Time `json:"start_date,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`

	Venue    *string `json:"venue,omitempty"`
	IsOnline *bool   `json:"is_online,omitempty"`

	RegistrationFee *float64 `json:"registration_fee,omitempty"`
	MaxParticipants *int     `json:"max_participants,omitempty"`

	TeamSize *models.TeamSize `json:"team_size,omitempty"`
}

type EventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published cancelled"`
}

type EventListQuery struct {
	EventType string `query:"event_type"`
	Search    string `query:"search"`
}
