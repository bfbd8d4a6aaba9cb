package domain

import (
	"errors"
	"time"
)

// EnrollmentStatus represents the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	StatusActive    EnrollmentStatus = "activo"
	StatusCompleted EnrollmentStatus = "completado"
	StatusCancelled EnrollmentStatus = "cancelado"
)

// validTransitions defines the allowed state machine transitions. Completed
// and cancelled are terminal; re-enrollment after cancellation happens at
// the store layer by reactivating the row, not by a state transition here.
var validTransitions = map[EnrollmentStatus][]EnrollmentStatus{
	StatusActive: {StatusCompleted, StatusCancelled},
}

var ErrEnrollmentNotFound = errors.New("enrollment not found")
var ErrAlreadyEnrolled = errors.New("student already enrolled in this course")
var ErrInvalidTransition = errors.New("invalid enrollment status transition")
var ErrInvalidProgress = errors.New("progress must be between 0 and 100")
var ErrInvalidStatus = errors.New("invalid enrollment status")
var ErrForbidden = errors.New("access forbidden")

// Valid reports whether the status is one of the known values.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s EnrollmentStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s EnrollmentStatus) CanTransitionTo(next EnrollmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Enrollment is the core aggregate: one student's participation in one
// course. At most one enrollment exists per (user, course) pair.
type Enrollment struct {
	ID         string           `json:"id"`
	UserID     string           `json:"usuarioId"`
	CourseID   string           `json:"cursoId"`
	Status     EnrollmentStatus `json:"estado"`
	Progress   int              `json:"progreso"` // percentage [0,100]
	EnrolledAt time.Time        `json:"fechaInscripcion"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// OwnedBy reports whether the enrollment belongs to the given user.
func (e *Enrollment) OwnedBy(userID string) bool {
	return e.UserID == userID
}
