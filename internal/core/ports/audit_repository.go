package ports

import (
	"context"

	"github.com/academia-online/courses-api/internal/core/domain"
)

// AuditRepository persists and reads the enrollment lifecycle audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.EnrollmentEvent) error
	ListByEnrollment(ctx context.Context, enrollmentID string) ([]domain.EnrollmentEvent, error)
}
