package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/ports"
)

// CourseRepository implements ports.CourseRepository on PostgreSQL.
type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = "id, titulo, descripcion, imagen, duracion, nivel, activo, created_at, updated_at"

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cursos (id, titulo, descripcion, imagen, duracion, nivel, activo, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Title, c.Description, c.Image, c.Duration, c.Level, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM cursos WHERE id = $1`, id)

	var c domain.Course
	if err := scanCourse(row.Scan, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &c, nil
}

func (r *CourseRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM cursos`
	if onlyActive {
		query += ` WHERE activo = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		var c domain.Course
		if err := scanCourse(rows.Scan, &c); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, &c)
	}
	return courses, rows.Err()
}

// ListByStudent joins the student's enrollments with their active courses.
func (r *CourseRepository) ListByStudent(ctx context.Context, userID string) ([]ports.EnrolledCourse, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.titulo, c.descripcion, c.imagen, c.duracion, c.nivel, c.activo,
		        c.created_at, c.updated_at, i.progreso, i.estado, i.fecha_inscripcion
		   FROM cursos c
		   JOIN inscripciones i ON i.curso_id = c.id
		  WHERE i.usuario_id = $1 AND c.activo = TRUE
		  ORDER BY i.fecha_inscripcion DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list student courses: %w", err)
	}
	defer rows.Close()

	result := make([]ports.EnrolledCourse, 0)
	for rows.Next() {
		var ec ports.EnrolledCourse
		err := rows.Scan(
			&ec.ID, &ec.Title, &ec.Description, &ec.Image, &ec.Duration, &ec.Level,
			&ec.Active, &ec.CreatedAt, &ec.UpdatedAt,
			&ec.Progress, &ec.Status, &ec.EnrolledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student course: %w", err)
		}
		result = append(result, ec)
	}
	return result, rows.Err()
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cursos
		    SET titulo = $2, descripcion = $3, imagen = $4, duracion = $5,
		        nivel = $6, activo = $7, updated_at = $8
		  WHERE id = $1`,
		c.ID, c.Title, c.Description, c.Image, c.Duration, c.Level, c.Active, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cursos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func scanCourse(scan func(dest ...any) error, c *domain.Course) error {
	return scan(&c.ID, &c.Title, &c.Description, &c.Image, &c.Duration,
		&c.Level, &c.Active, &c.CreatedAt, &c.UpdatedAt)
}
