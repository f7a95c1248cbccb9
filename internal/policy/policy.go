// Package policy states each resource's authorization rule once, instead
// of repeating inline role checks in every handler.
package policy

import (
	"smartscholar/internal/httperr"
	"smartscholar/internal/models"
)

// RequireRole fails with 403 unless the viewer holds one of the roles.
func RequireRole(v models.Viewer, roles ...string) error {
	for _, r := range roles {
		if v.Role == r {
			return nil
		}
	}
	return httperr.Forbidden("insufficient role")
}

// RequireEventOwner allows only the college that created the event.
func RequireEventOwner(v models.Viewer, event *models.Event) error {
	if v.Role != models.RoleCollege || event.CreatedBy != v.ID {
		return httperr.Forbidden("only the event's college can perform this action")
	}
	return nil
}

// RequireCourseOwner allows only the college that owns the course.
func RequireCourseOwner(v models.Viewer, course *models.Course) error {
	if v.Role != models.RoleCollege || course.CollegeID != v.ID {
		return httperr.Forbidden("only the course's college can perform this action")
	}
	return nil
}

// RequireVerifiedCollege allows only colleges whose verification was approved.
func RequireVerifiedCollege(v models.Viewer) error {
	if v.Role != models.RoleCollege {
		return httperr.Forbidden("college role required")
	}
	if v.VerificationStatus != models.VerificationApproved {
		return httperr.Forbidden("college verification is not approved")
	}
	return nil
}
