package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/ports"
)

type stubEnrollmentService struct {
	enrollFn         func(ctx context.Context, courseID, studentID string) (*domain.Enrollment, error)
	updateProgressFn func(ctx context.Context, id string, caller ports.Caller, input ports.UpdateProgressInput) (*domain.Enrollment, error)
	cancelFn         func(ctx context.Context, id string, caller ports.Caller) (*domain.Enrollment, error)
	listAllFn        func(ctx context.Context) ([]ports.EnrollmentDetail, error)
	listByStudentFn  func(ctx context.Context, studentID string, caller ports.Caller) ([]ports.StudentEnrollment, error)
	historyFn        func(ctx context.Context, id string, caller ports.Caller) ([]domain.EnrollmentEvent, error)
}

func (s *stubEnrollmentService) Enroll(ctx context.Context, courseID, studentID string) (*domain.Enrollment, error) {
	return s.enrollFn(ctx, courseID, studentID)
}

func (s *stubEnrollmentService) UpdateProgress(ctx context.Context, id string, caller ports.Caller, input ports.UpdateProgressInput) (*domain.Enrollment, error) {
	return s.updateProgressFn(ctx, id, caller, input)
}

func (s *stubEnrollmentService) Cancel(ctx context.Context, id string, caller ports.Caller) (*domain.Enrollment, error) {
	return s.cancelFn(ctx, id, caller)
}

func (s *stubEnrollmentService) ListAll(ctx context.Context) ([]ports.EnrollmentDetail, error) {
	return s.listAllFn(ctx)
}

func (s *stubEnrollmentService) ListByStudent(ctx context.Context, studentID string, caller ports.Caller) ([]ports.StudentEnrollment, error) {
	return s.listByStudentFn(ctx, studentID, caller)
}

func (s *stubEnrollmentService) History(ctx context.Context, id string, caller ports.Caller) ([]domain.EnrollmentEvent, error) {
	return s.historyFn(ctx, id, caller)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("userID", userID)
	c.Set("role", role)
	return c
}

func TestEnrollmentHandler_Enroll_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		enrollFn: func(_ context.Context, courseID, studentID string) (*domain.Enrollment, error) {
			if courseID != "c1" || studentID != "a1" {
				t.Fatalf("unexpected args: %s %s", courseID, studentID)
			}
			return &domain.Enrollment{ID: "e1", CourseID: courseID, UserID: studentID, Status: domain.StatusActive}, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	body := strings.NewReader(`{"cursoId":"c1","alumnoId":"a1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/inscripciones", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin-1", domain.RoleAdmin)

	if err := handler.Enroll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	enrollment, ok := resp["inscripcion"].(map[string]any)
	if !ok {
		t.Fatalf("expected inscripcion in response")
	}
	if enrollment["estado"] != "activo" || enrollment["usuarioId"] != "a1" {
		t.Fatalf("unexpected payload: %+v", enrollment)
	}
}

func TestEnrollmentHandler_Enroll_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewEnrollmentHandler(&stubEnrollmentService{
		enrollFn: func(_ context.Context, _, _ string) (*domain.Enrollment, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"cursoId":"c1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/inscripciones", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin-1", domain.RoleAdmin)

	err := handler.Enroll(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEnrollmentHandler_UpdateProgress_PassesCaller(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		updateProgressFn: func(_ context.Context, id string, caller ports.Caller, input ports.UpdateProgressInput) (*domain.Enrollment, error) {
			if id != "e1" {
				t.Fatalf("unexpected id %s", id)
			}
			if caller.ID != "a1" || caller.Role != domain.RoleStudent {
				t.Fatalf("caller not forwarded: %+v", caller)
			}
			if input.Progress == nil || *input.Progress != 80 {
				t.Fatalf("progress not forwarded: %+v", input)
			}
			return &domain.Enrollment{ID: id, Progress: 80, Status: domain.StatusActive}, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	body := strings.NewReader(`{"progreso":80}`)
	req := httptest.NewRequest(http.MethodPut, "/api/inscripciones/e1/progreso", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "a1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := handler.UpdateProgress(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEnrollmentHandler_UpdateProgress_RangeValidated(t *testing.T) {
	e := newTestEcho()
	handler := NewEnrollmentHandler(&stubEnrollmentService{
		updateProgressFn: func(_ context.Context, _ string, _ ports.Caller, _ ports.UpdateProgressInput) (*domain.Enrollment, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"progreso":150}`)
	req := httptest.NewRequest(http.MethodPut, "/api/inscripciones/e1/progreso", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "a1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("e1")

	err := handler.UpdateProgress(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEnrollmentHandler_UpdateProgress_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewEnrollmentHandler(&stubEnrollmentService{})

	req := httptest.NewRequest(http.MethodPut, "/api/inscripciones/e1/progreso", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.UpdateProgress(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestEnrollmentHandler_Cancel_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		cancelFn: func(_ context.Context, id string, caller ports.Caller) (*domain.Enrollment, error) {
			return &domain.Enrollment{ID: id, Status: domain.StatusCancelled}, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/inscripciones/e1/cancelar", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "a1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := handler.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEnrollmentHandler_History_PropagatesForbidden(t *testing.T) {
	e := newTestEcho()
	handler := NewEnrollmentHandler(&stubEnrollmentService{
		historyFn: func(_ context.Context, _ string, _ ports.Caller) ([]domain.EnrollmentEvent, error) {
			return nil, domain.ErrForbidden
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/inscripciones/e1/historial", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "otro", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := handler.History(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to bubble up, got %v", err)
	}
}
