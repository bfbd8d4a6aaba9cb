package ports

import (
	"context"

	"github.com/academia-online/courses-api/internal/core/domain"
)

// CreateCourseInput carries the data needed to create a course.
type CreateCourseInput struct {
	Title       string
	Description string
	Image       string
	Duration    int
	Level       string
}

// UpdateCourseInput is a partial update: nil fields keep the stored value.
// Pointers make "clear to empty" and "leave unchanged" distinguishable.
type UpdateCourseInput struct {
	Title       *string
	Description *string
	Image       *string
	Duration    *int
	Level       *string
	Active      *bool
}

// DeleteCourseResult reports which action the delete operation took.
type DeleteCourseResult struct {
	// Deactivated is true when the course had enrollments and was
	// soft-deleted instead of removed.
	Deactivated bool
	Message     string
}

// CourseService defines use-case operations for the course catalog.
type CourseService interface {
	ListAll(ctx context.Context) ([]*domain.Course, error)
	// ListPublic returns only active courses and may serve from cache.
	ListPublic(ctx context.Context) ([]*domain.Course, error)
	ListByStudent(ctx context.Context, userID string) ([]EnrolledCourse, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, input CreateCourseInput) (*domain.Course, error)
	Update(ctx context.Context, id string, input UpdateCourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) (*DeleteCourseResult, error)
}
