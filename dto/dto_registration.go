package dto

import "smartscholar/internal/models"

type ApplyRequest struct {
	Phone          string `json:"phone" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
	EducationLevel string `json:"education_level" validate:"required"`

	IsTeamRegistration bool                `json:"is_team_registration"`
	TeamName           string              `json:"team_name,omitempty"`
	TeamMembers        []models.TeamMember `json:"team_members,omitempty"`

	AdditionalNotes string `json:"additional_notes,omitempty" validate:"max=500"`
}

type RejectRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required"`
}

type PaymentUpdateRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed failed"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type ApplicationListQuery struct {
	Status             string `query:"status"`
	PaymentStatus      string `query:"payment_status"`
	IsTeamRegistration *bool  `query:"is_team_registration"`
	Page               int    `query:"page"`
	Limit              int    `query:"limit"`
}

// ApplicationStats is aggregated over every registration of the event,
// not just the returned page.
type ApplicationStats struct {
	Total             int `json:"total" bson:"total"`
	Pending           int `json:"pending" bson:"pending"`
	Approved          int `json:"approved" bson:"approved"`
	Rejected          int `json:"rejected" bson:"rejected"`
	TeamRegistrations int `json:"team_registrations" bson:"team_registrations"`
	Individual        int `json:"individual" bson:"individual"`
	PaymentsCompleted int `json:"payments_completed" bson:"payments_completed"`
}

type MyApplication struct {
	Registration models.EventRegistration `json:"registration"`
	Event        *models.Event            `json:"event,omitempty"`
}

type ApplicationPage struct {
	Applications []models.EventRegistration `json:"applications"`
	Stats        ApplicationStats           `json:"stats"`
	Page         int                        `json:"page"`
	Limit        int                        `json:"limit"`
	TotalPages   int                        `json:"total_pages"`
}
