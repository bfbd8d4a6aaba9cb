package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/academia-online/courses-api/internal/api/metrics"
	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/ports"
)

// AuditRecorder accepts lifecycle events for asynchronous persistence.
// Recording never fails the originating request.
type AuditRecorder interface {
	Record(event domain.EnrollmentEvent)
}

type enrollmentService struct {
	enrollments ports.EnrollmentRepository
	courses     ports.CourseRepository
	users       ports.UserRepository
	audit       AuditRecorder
	trail       ports.AuditRepository
	log         zerolog.Logger
}

// NewEnrollmentService returns an EnrollmentService implementation.
func NewEnrollmentService(
	enrollments ports.EnrollmentRepository,
	courses ports.CourseRepository,
	users ports.UserRepository,
	audit AuditRecorder,
	trail ports.AuditRepository,
	log zerolog.Logger,
) ports.EnrollmentService {
	return &enrollmentService{
		enrollments: enrollments,
		courses:     courses,
		users:       users,
		audit:       audit,
		trail:       trail,
		log:         log,
	}
}

// Enroll registers a student in a course. The (user, course) uniqueness is
// resolved atomically at the store: a cancelled enrollment is reactivated,
// an active or completed one yields ErrAlreadyEnrolled.
func (s *enrollmentService) Enroll(ctx context.Context, courseID, studentID string) (*domain.Enrollment, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	student, err := s.users.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	enrollment := &domain.Enrollment{
		ID:         uuid.NewString(),
		UserID:     student.ID,
		CourseID:   course.ID,
		Status:     domain.StatusActive,
		Progress:   0,
		EnrolledAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.enrollments.CreateOrReactivate(ctx, enrollment)
	if err != nil {
		return nil, err
	}

	action := domain.ActionEnrolled
	if created.ID != enrollment.ID {
		// The store reused a cancelled row instead of inserting.
		action = domain.ActionReactivated
	}

	s.log.Info().
		Str("enrollment_id", created.ID).
		Str("usuario_id", created.UserID).
		Str("curso_id", created.CourseID).
		Str("action", string(action)).
		Msg("student enrolled")

	metrics.EnrollmentsCreatedTotal.WithLabelValues(string(course.Level)).Inc()
	s.record(created, action, "")
	return created, nil
}

// UpdateProgress applies a partial update to progress and/or status on
// behalf of the owning student or an admin.
func (s *enrollmentService) UpdateProgress(ctx context.Context, id string, caller ports.Caller, input ports.UpdateProgressInput) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !enrollment.OwnedBy(caller.ID) {
		return nil, domain.ErrForbidden
	}

	if input.Progress != nil && (*input.Progress < 0 || *input.Progress > 100) {
		return nil, domain.ErrInvalidProgress
	}

	target := enrollment.Status
	switch {
	case input.Status != nil:
		next := domain.EnrollmentStatus(*input.Status)
		if !next.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		target = next
	case input.Progress != nil && *input.Progress == 100:
		target = domain.StatusCompleted
	}

	if target != enrollment.Status && !enrollment.Status.CanTransitionTo(target) {
		return nil, domain.ErrInvalidTransition
	}
	// A terminal enrollment is frozen: no silent progress edits either.
	if target == enrollment.Status && enrollment.Status.Terminal() &&
		input.Progress != nil && *input.Progress != enrollment.Progress {
		return nil, domain.ErrInvalidTransition
	}

	changedStatus := target != enrollment.Status
	if input.Progress != nil {
		enrollment.Progress = *input.Progress
	}
	enrollment.Status = target
	enrollment.UpdatedAt = time.Now().UTC()

	if err := s.enrollments.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	if changedStatus {
		metrics.EnrollmentTransitionsTotal.WithLabelValues(string(target)).Inc()
	}

	action := domain.ActionProgress
	if target == domain.StatusCompleted && changedStatus {
		action = domain.ActionCompleted
	}
	s.record(enrollment, action, caller.ID)
	return enrollment, nil
}

// Cancel moves the enrollment to cancelado. Already cancelled is a no-op;
// a completed enrollment cannot be cancelled.
func (s *enrollmentService) Cancel(ctx context.Context, id string, caller ports.Caller) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !enrollment.OwnedBy(caller.ID) {
		return nil, domain.ErrForbidden
	}

	if enrollment.Status == domain.StatusCancelled {
		return enrollment, nil
	}
	if !enrollment.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, domain.ErrInvalidTransition
	}

	enrollment.Status = domain.StatusCancelled
	enrollment.UpdatedAt = time.Now().UTC()

	if err := s.enrollments.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	s.log.Info().Str("enrollment_id", enrollment.ID).Str("actor", caller.ID).Msg("enrollment cancelled")
	metrics.EnrollmentTransitionsTotal.WithLabelValues(string(domain.StatusCancelled)).Inc()
	s.record(enrollment, domain.ActionCancelled, caller.ID)
	return enrollment, nil
}

func (s *enrollmentService) ListAll(ctx context.Context) ([]ports.EnrollmentDetail, error) {
	return s.enrollments.ListDetailed(ctx)
}

func (s *enrollmentService) ListByStudent(ctx context.Context, studentID string, caller ports.Caller) ([]ports.StudentEnrollment, error) {
	if !caller.IsAdmin() && caller.ID != studentID {
		return nil, domain.ErrForbidden
	}
	return s.enrollments.ListByStudent(ctx, studentID)
}

// History returns the audit trail of one enrollment, owner or admin only.
func (s *enrollmentService) History(ctx context.Context, id string, caller ports.Caller) ([]domain.EnrollmentEvent, error) {
	enrollment, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !enrollment.OwnedBy(caller.ID) {
		return nil, domain.ErrForbidden
	}
	return s.trail.ListByEnrollment(ctx, enrollment.ID)
}

func (s *enrollmentService) record(e *domain.Enrollment, action domain.EnrollmentAction, actorID string) {
	s.audit.Record(domain.EnrollmentEvent{
		EnrollmentID: e.ID,
		UserID:       e.UserID,
		CourseID:     e.CourseID,
		Action:       action,
		Status:       e.Status,
		Progress:     e.Progress,
		ActorID:      actorID,
		Timestamp:    time.Now().UTC(),
	})
}
