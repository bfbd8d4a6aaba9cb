package domain

import "time"

// EnrollmentAction identifies what happened to an enrollment.
type EnrollmentAction string

const (
	ActionEnrolled    EnrollmentAction = "inscrito"
	ActionReactivated EnrollmentAction = "reactivado"
	ActionProgress    EnrollmentAction = "progreso"
	ActionCompleted   EnrollmentAction = "completado"
	ActionCancelled   EnrollmentAction = "cancelado"
)

// EnrollmentEvent is one entry of the enrollment lifecycle audit trail.
type EnrollmentEvent struct {
	EnrollmentID string           `json:"inscripcionId"`
	UserID       string           `json:"usuarioId"`
	CourseID     string           `json:"cursoId"`
	Action       EnrollmentAction `json:"accion"`
	Status       EnrollmentStatus `json:"estado"`
	Progress     int              `json:"progreso"`
	ActorID      string           `json:"actorId,omitempty"` // who triggered the change
	Timestamp    time.Time        `json:"timestamp"`
}
