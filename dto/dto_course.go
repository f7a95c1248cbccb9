package dto

type CourseRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description,omitempty"`
	DurationMonths int     `json:"duration_months" validate:"required,gte=1"`
	Level          string  `json:"level" validate:"required,oneof=undergraduate postgraduate phd"`
	TuitionFee     float64 `json:"tuition_fee" validate:"gte=0"`
}

type CourseUpdateRequest struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	DurationMonths *int     `json:"duration_months,omitempty"`
	Level          *string  `json:"level,omitempty"`
	TuitionFee     *float64 `json:"tuition_fee,omitempty"`
}

type CourseListQuery struct {
	CollegeID string `query:"college_id"`
	Level     string `query:"level"`
}
