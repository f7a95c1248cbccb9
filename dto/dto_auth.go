package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=student college"`

	// College signup
	CollegeName string `json:"college_name,omitempty"`

	// Student signup
	Institution    string `json:"institution,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyCollegeRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
