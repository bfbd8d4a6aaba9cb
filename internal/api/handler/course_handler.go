package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academia-online/courses-api/internal/core/ports"
)

type CourseHandler struct {
	courseService ports.CourseService
}

func NewCourseHandler(courseService ports.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListPublic returns the public catalog of active courses.
//
// @Summary      List public courses
// @Tags         cursos
// @Produce      json
// @Success      200  {array}  domain.Course
// @Router       /cursos/publicos [get]
func (h *CourseHandler) ListPublic(c echo.Context) error {
	courses, err := h.courseService.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// List returns every course, active or not. Admin only.
//
// @Summary      List all courses
// @Tags         cursos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Course
// @Router       /cursos [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.courseService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// ListMine returns the caller's enrolled courses with their progress.
//
// @Summary      List own courses
// @Tags         cursos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.EnrolledCourse
// @Router       /cursos/mis-cursos [get]
func (h *CourseHandler) ListMine(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	courses, err := h.courseService.ListByStudent(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Get returns one course by ID.
//
// @Summary      Get a course
// @Tags         cursos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  map[string]string
// @Router       /cursos/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.courseService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Create registers a new course. Admin only.
//
// @Summary      Create a course
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course data"
// @Success      201   {object}  domain.Course
// @Failure      400   {object}  map[string]string
// @Router       /cursos [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.courseService.Create(c.Request().Context(), ports.CreateCourseInput{
		Title:       req.Titulo,
		Description: req.Descripcion,
		Image:       req.Imagen,
		Duration:    req.Duracion,
		Level:       req.Nivel,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "curso creado",
		"curso":   course,
	})
}

// Update applies a partial update to a course. Admin only.
//
// @Summary      Update a course
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Course ID"
// @Param        body  body      updateCourseRequest  true  "Fields to change"
// @Success      200   {object}  domain.Course
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /cursos/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.courseService.Update(c.Request().Context(), c.Param("id"), ports.UpdateCourseInput{
		Title:       req.Titulo,
		Description: req.Descripcion,
		Image:       req.Imagen,
		Duration:    req.Duracion,
		Level:       req.Nivel,
		Active:      req.Activo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "curso actualizado",
		"curso":   course,
	})
}

// Delete removes a course, or deactivates it when students are enrolled.
// Admin only.
//
// @Summary      Delete a course
// @Tags         cursos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /cursos/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	result, err := h.courseService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":     result.Message,
		"desactivado": result.Deactivated,
	})
}
