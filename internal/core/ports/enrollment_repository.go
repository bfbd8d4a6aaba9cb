package ports

import (
	"context"

	"github.com/academia-online/courses-api/internal/core/domain"
)

// UserSummary is the minimal user projection embedded in enrollment lists.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nombre"`
}

// CourseSummary is the minimal course projection embedded in enrollment lists.
type CourseSummary struct {
	ID    string             `json:"id"`
	Title string             `json:"titulo"`
	Level domain.CourseLevel `json:"nivel"`
}

// EnrollmentDetail joins an enrollment with its user and course projections.
type EnrollmentDetail struct {
	domain.Enrollment
	User   UserSummary   `json:"usuario"`
	Course CourseSummary `json:"curso"`
}

// StudentEnrollment joins an enrollment with the full course record.
type StudentEnrollment struct {
	domain.Enrollment
	Course domain.Course `json:"curso"`
}

// EnrollmentRepository defines persistence operations for enrollments.
type EnrollmentRepository interface {
	// CreateOrReactivate atomically inserts a new active enrollment, or
	// reactivates a cancelled one for the same (user, course) pair. When
	// the pair already has an active or completed enrollment it returns
	// domain.ErrAlreadyEnrolled. The pair uniqueness is enforced by the
	// store, so concurrent calls cannot both succeed.
	CreateOrReactivate(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error)
	FindByID(ctx context.Context, id string) (*domain.Enrollment, error)
	// Update persists the mutable fields (estado, progreso).
	Update(ctx context.Context, e *domain.Enrollment) error
	// ListDetailed returns every enrollment with user and course projections.
	ListDetailed(ctx context.Context) ([]EnrollmentDetail, error)
	ListByStudent(ctx context.Context, userID string) ([]StudentEnrollment, error)
	CountByCourse(ctx context.Context, courseID string) (int64, error)
}
