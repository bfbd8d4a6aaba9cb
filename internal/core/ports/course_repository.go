package ports

import (
	"context"
	"time"

	"github.com/academia-online/courses-api/internal/core/domain"
)

// EnrolledCourse is a course joined with the enrollment of one student,
// as served by the "mis cursos" view.
type EnrolledCourse struct {
	domain.Course
	Progress   int                     `json:"progreso"`
	Status     domain.EnrollmentStatus `json:"estado"`
	EnrolledAt time.Time               `json:"fechaInscripcion"`
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, c *domain.Course) error
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	// List returns all courses; when onlyActive is set, inactive courses
	// are filtered out.
	List(ctx context.Context, onlyActive bool) ([]*domain.Course, error)
	// ListByStudent returns the active courses the student is enrolled in,
	// joined with the enrollment progress and state.
	ListByStudent(ctx context.Context, userID string) ([]EnrolledCourse, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
}
