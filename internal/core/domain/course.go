package domain

import (
	"errors"
	"time"
)

// CourseLevel represents the declared difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "principiante"
	LevelIntermediate CourseLevel = "intermedio"
	LevelAdvanced     CourseLevel = "avanzado"
)

var ErrCourseNotFound = errors.New("course not found")
var ErrTitleRequired = errors.New("course title is required")
var ErrInvalidLevel = errors.New("invalid course level")

// Valid reports whether the level is one of the known values.
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course is a catalog entry students can be enrolled into. Inactive courses
// stay in the catalog for enrolled students but are hidden from the public
// listing.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"titulo"`
	Description string      `json:"descripcion,omitempty"`
	Image       string      `json:"imagen,omitempty"`
	Duration    int         `json:"duracion,omitempty"` // hours
	Level       CourseLevel `json:"nivel"`
	Active      bool        `json:"activo"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
