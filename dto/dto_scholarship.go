package dto

import "time"

type ScholarshipEntryRequest struct {
	University      string     `json:"university" validate:"required"`
	ScholarshipName string     `json:"scholarship_name" validate:"required"`
	OpeningDate     time.Time  `json:"opening_date" validate:"required"`
	ClosingDate     *time.Time `json:"closing_date,omitempty"`
	Year            int        `json:"year" validate:"required"`
	Level           string     `json:"level" validate:"required,oneof=undergraduate postgraduate phd all"`
}

type ScholarshipUpdateRequest struct {
	University      *string    `json:"university,omitempty" validate:"omitempty,min=1"`
	ScholarshipName *string    `json:"scholarship_name,omitempty" validate:"omitempty,min=1"`
	OpeningDate     *time.Time `json:"opening_date,omitempty"`
	ClosingDate     *time.Time `json:"closing_date,omitempty"`
	Year            *int       `json:"year,omitempty" validate:"omitempty,gte=2000"`
	Level           *string    `json:"level,omitempty" validate:"omitempty,oneof=undergraduate postgraduate phd all"`
}

type CalendarListQuery struct {
	Status string `query:"status"`
	Level  string `query:"level"`
	Year   int    `query:"year"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RemindMeRequest struct {
	Email              string `json:"email" validate:"required,email"`
	ReminderDaysBefore int    `json:"reminder_days_before" validate:"gte=1,lte=30"`
}
