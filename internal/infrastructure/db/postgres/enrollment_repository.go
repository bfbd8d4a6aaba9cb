package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/ports"
)

// EnrollmentRepository implements ports.EnrollmentRepository on PostgreSQL.
type EnrollmentRepository struct {
	db *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// CreateOrReactivate relies on the UNIQUE (usuario_id, curso_id) constraint:
// the upsert only fires when the existing row is cancelled, so an active or
// completed enrollment makes the statement return no rows.
func (r *EnrollmentRepository) CreateOrReactivate(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO inscripciones (id, usuario_id, curso_id, estado, progreso, fecha_inscripcion, created_at, updated_at)
		 VALUES ($1, $2, $3, 'activo', 0, $4, $4, $4)
		 ON CONFLICT (usuario_id, curso_id) DO UPDATE
		    SET estado = 'activo', progreso = 0,
		        fecha_inscripcion = EXCLUDED.fecha_inscripcion,
		        updated_at = EXCLUDED.updated_at
		  WHERE inscripciones.estado = 'cancelado'
		 RETURNING id, estado, progreso, fecha_inscripcion`,
		e.ID, e.UserID, e.CourseID, e.EnrolledAt,
	)

	created := &domain.Enrollment{
		UserID:    e.UserID,
		CourseID:  e.CourseID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	err := row.Scan(&created.ID, &created.Status, &created.Progress, &created.EnrolledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	return created, nil
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, usuario_id, curso_id, estado, progreso, fecha_inscripcion, created_at, updated_at
		   FROM inscripciones WHERE id = $1`, id)

	var e domain.Enrollment
	err := row.Scan(&e.ID, &e.UserID, &e.CourseID, &e.Status, &e.Progress,
		&e.EnrolledAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return &e, nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, e *domain.Enrollment) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE inscripciones
		    SET estado = $2, progreso = $3, updated_at = $4
		  WHERE id = $1`,
		e.ID, e.Status, e.Progress, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update enrollment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func (r *EnrollmentRepository) ListDetailed(ctx context.Context) ([]ports.EnrollmentDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT i.id, i.usuario_id, i.curso_id, i.estado, i.progreso,
		        i.fecha_inscripcion, i.created_at, i.updated_at,
		        u.id, u.email, u.nombre,
		        c.id, c.titulo, c.nivel
		   FROM inscripciones i
		   JOIN usuarios u ON u.id = i.usuario_id
		   JOIN cursos   c ON c.id = i.curso_id
		  ORDER BY i.fecha_inscripcion DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	details := make([]ports.EnrollmentDetail, 0)
	for rows.Next() {
		var d ports.EnrollmentDetail
		err := rows.Scan(
			&d.ID, &d.UserID, &d.CourseID, &d.Status, &d.Progress,
			&d.EnrolledAt, &d.CreatedAt, &d.UpdatedAt,
			&d.User.ID, &d.User.Email, &d.User.Name,
			&d.Course.ID, &d.Course.Title, &d.Course.Level,
		)
		if err != nil {
			return nil, fmt.Errorf("scan enrollment detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *EnrollmentRepository) ListByStudent(ctx context.Context, userID string) ([]ports.StudentEnrollment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT i.id, i.usuario_id, i.curso_id, i.estado, i.progreso,
		        i.fecha_inscripcion, i.created_at, i.updated_at,
		        c.id, c.titulo, c.descripcion, c.imagen, c.duracion, c.nivel,
		        c.activo, c.created_at, c.updated_at
		   FROM inscripciones i
		   JOIN cursos c ON c.id = i.curso_id
		  WHERE i.usuario_id = $1
		  ORDER BY i.fecha_inscripcion DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list student enrollments: %w", err)
	}
	defer rows.Close()

	result := make([]ports.StudentEnrollment, 0)
	for rows.Next() {
		var se ports.StudentEnrollment
		err := rows.Scan(
			&se.ID, &se.UserID, &se.CourseID, &se.Status, &se.Progress,
			&se.EnrolledAt, &se.CreatedAt, &se.UpdatedAt,
			&se.Course.ID, &se.Course.Title, &se.Course.Description, &se.Course.Image,
			&se.Course.Duration, &se.Course.Level, &se.Course.Active,
			&se.Course.CreatedAt, &se.Course.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student enrollment: %w", err)
		}
		result = append(result, se)
	}
	return result, rows.Err()
}

func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inscripciones WHERE curso_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}
