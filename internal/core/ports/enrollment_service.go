package ports

import (
	"context"

	"github.com/academia-online/courses-api/internal/core/domain"
)

// Caller is the identity attached to a request by the auth middleware.
type Caller struct {
	ID   string
	Role string
}

// IsAdmin reports whether the caller carries the administrative role.
func (c Caller) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

// UpdateProgressInput is a partial update of an enrollment: nil fields keep
// the stored value.
type UpdateProgressInput struct {
	Progress *int
	Status   *string
}

// EnrollmentService defines the use-case operations around the enrollment
// lifecycle. All mutating operations enforce the owner-or-admin rule.
type EnrollmentService interface {
	// Enroll registers a student in a course. Only valid for users with
	// the alumno role; duplicate active or completed enrollments fail
	// with domain.ErrAlreadyEnrolled.
	Enroll(ctx context.Context, courseID, studentID string) (*domain.Enrollment, error)
	// UpdateProgress mutates progress and/or status. Reaching 100 moves
	// the enrollment to completado; terminal states reject any change.
	UpdateProgress(ctx context.Context, id string, caller Caller, input UpdateProgressInput) (*domain.Enrollment, error)
	// Cancel moves the enrollment to cancelado. Cancelling an already
	// cancelled enrollment is a no-op success.
	Cancel(ctx context.Context, id string, caller Caller) (*domain.Enrollment, error)
	ListAll(ctx context.Context) ([]EnrollmentDetail, error)
	ListByStudent(ctx context.Context, studentID string, caller Caller) ([]StudentEnrollment, error)
	// History returns the audit trail of one enrollment.
	History(ctx context.Context, id string, caller Caller) ([]domain.EnrollmentEvent, error)
}
