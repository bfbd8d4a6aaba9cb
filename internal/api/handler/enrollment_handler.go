package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academia-online/courses-api/internal/core/ports"
)

type EnrollmentHandler struct {
	enrollmentService ports.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Enroll registers a student in a course. Admin only.
//
// @Summary      Enroll a student
// @Tags         inscripciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      enrollRequest  true  "Enrollment data"
// @Success      201   {object}  domain.Enrollment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /inscripciones [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request().Context(), req.CursoID, req.AlumnoID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":     "inscripción creada",
		"inscripcion": enrollment,
	})
}

// List returns every enrollment with user and course data. Admin only.
//
// @Summary      List all enrollments
// @Tags         inscripciones
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.EnrollmentDetail
// @Router       /inscripciones [get]
func (h *EnrollmentHandler) List(c echo.Context) error {
	enrollments, err := h.enrollmentService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollments)
}

// ListMine returns the caller's own enrollments.
//
// @Summary      List own enrollments
// @Tags         inscripciones
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.StudentEnrollment
// @Router       /inscripciones/mis-inscripciones [get]
func (h *EnrollmentHandler) ListMine(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	enrollments, err := h.enrollmentService.ListByStudent(c.Request().Context(), caller.ID, caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollments)
}

// ListByStudent returns the enrollments of one student. Admin only.
//
// @Summary      List a student's enrollments
// @Tags         inscripciones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Student ID"
// @Success      200  {array}  ports.StudentEnrollment
// @Router       /inscripciones/alumno/{id} [get]
func (h *EnrollmentHandler) ListByStudent(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	enrollments, err := h.enrollmentService.ListByStudent(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollments)
}

// UpdateProgress mutates the progress and/or status of an enrollment.
// Owner or admin.
//
// @Summary      Update enrollment progress
// @Tags         inscripciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Enrollment ID"
// @Param        body  body      updateProgressRequest  true  "Progress update"
// @Success      200   {object}  domain.Enrollment
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /inscripciones/{id}/progreso [put]
func (h *EnrollmentHandler) UpdateProgress(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enrollment, err := h.enrollmentService.UpdateProgress(c.Request().Context(), c.Param("id"), caller, ports.UpdateProgressInput{
		Progress: req.Progreso,
		Status:   req.Estado,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":     "progreso actualizado",
		"inscripcion": enrollment,
	})
}

// Cancel moves an enrollment to the cancelled state. Owner or admin.
//
// @Summary      Cancel an enrollment
// @Tags         inscripciones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Enrollment ID"
// @Success      200  {object}  domain.Enrollment
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /inscripciones/{id}/cancelar [put]
func (h *EnrollmentHandler) Cancel(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	enrollment, err := h.enrollmentService.Cancel(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":     "inscripción cancelada",
		"inscripcion": enrollment,
	})
}

// History returns the audit trail of an enrollment. Owner or admin.
//
// @Summary      Get enrollment history
// @Tags         inscripciones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Enrollment ID"
// @Success      200  {array}  domain.EnrollmentEvent
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /inscripciones/{id}/historial [get]
func (h *EnrollmentHandler) History(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	events, err := h.enrollmentService.History(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
