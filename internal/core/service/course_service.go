package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/academia-online/courses-api/internal/api/metrics"
	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/ports"
)

// CatalogCache abstracts the public-catalog cache (Redis). A miss is
// reported as (nil, nil); cache failures never fail the request.
type CatalogCache interface {
	Get(ctx context.Context) ([]*domain.Course, error)
	Set(ctx context.Context, courses []*domain.Course) error
	Invalidate(ctx context.Context) error
}

// CourseService implements the course catalog use cases.
type CourseService struct {
	courses     ports.CourseRepository
	enrollments ports.EnrollmentRepository
	cache       CatalogCache
	log         zerolog.Logger
}

func NewCourseService(
	courses ports.CourseRepository,
	enrollments ports.EnrollmentRepository,
	cache CatalogCache,
	log zerolog.Logger,
) *CourseService {
	return &CourseService{courses: courses, enrollments: enrollments, cache: cache, log: log}
}

func (s *CourseService) ListAll(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.List(ctx, false)
}

// ListPublic returns the active catalog, serving from cache when possible.
func (s *CourseService) ListPublic(ctx context.Context) ([]*domain.Course, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
	} else if cached != nil {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}

	courses, err := s.courses.List(ctx, true)
	if err != nil {
		return nil, err
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	if err := s.cache.Set(ctx, courses); err != nil {
		s.log.Warn().Err(err).Msg("failed to populate catalog cache")
	}
	return courses, nil
}

func (s *CourseService) ListByStudent(ctx context.Context, userID string) ([]ports.EnrolledCourse, error) {
	return s.courses.ListByStudent(ctx, userID)
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.FindByID(ctx, id)
}

func (s *CourseService) Create(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	if input.Title == "" {
		return nil, domain.ErrTitleRequired
	}

	level := domain.CourseLevel(input.Level)
	if input.Level == "" {
		level = domain.LevelBeginner
	} else if !level.Valid() {
		return nil, domain.ErrInvalidLevel
	}

	now := time.Now().UTC()
	course := &domain.Course{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Duration:    input.Duration,
		Level:       level,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.log.Info().Str("course_id", course.ID).Str("titulo", course.Title).Msg("course created")
	metrics.CoursesCreatedTotal.WithLabelValues(string(course.Level)).Inc()
	s.invalidateCatalog(ctx)
	return course, nil
}

// Update applies a partial merge: nil input fields keep the stored value.
func (s *CourseService) Update(ctx context.Context, id string, input ports.UpdateCourseInput) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.ErrTitleRequired
		}
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Image != nil {
		course.Image = *input.Image
	}
	if input.Duration != nil {
		course.Duration = *input.Duration
	}
	if input.Level != nil {
		level := domain.CourseLevel(*input.Level)
		if !level.Valid() {
			return nil, domain.ErrInvalidLevel
		}
		course.Level = level
	}
	if input.Active != nil {
		course.Active = *input.Active
	}
	course.UpdatedAt = time.Now().UTC()

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return course, nil
}

// Delete removes a course without enrollments; a course that is already
// referenced is deactivated instead so enrolled students keep their history.
func (s *CourseService) Delete(ctx context.Context, id string) (*ports.DeleteCourseResult, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.enrollments.CountByCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		course.Active = false
		course.UpdatedAt = time.Now().UTC()
		if err := s.courses.Update(ctx, course); err != nil {
			return nil, err
		}
		s.log.Info().Str("course_id", id).Int64("enrollments", count).Msg("course deactivated instead of deleted")
		s.invalidateCatalog(ctx)
		return &ports.DeleteCourseResult{
			Deactivated: true,
			Message:     "curso desactivado porque tiene inscripciones",
		}, nil
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.log.Info().Str("course_id", id).Msg("course deleted")
	s.invalidateCatalog(ctx)
	return &ports.DeleteCourseResult{Message: "curso eliminado"}, nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}
}
