package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/ports"
)

type stubCourseService struct {
	listAllFn       func(ctx context.Context) ([]*domain.Course, error)
	listPublicFn    func(ctx context.Context) ([]*domain.Course, error)
	listByStudentFn func(ctx context.Context, userID string) ([]ports.EnrolledCourse, error)
	getFn           func(ctx context.Context, id string) (*domain.Course, error)
	createFn        func(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error)
	updateFn        func(ctx context.Context, id string, input ports.UpdateCourseInput) (*domain.Course, error)
	deleteFn        func(ctx context.Context, id string) (*ports.DeleteCourseResult, error)
}

func (s *stubCourseService) ListAll(ctx context.Context) ([]*domain.Course, error) {
	return s.listAllFn(ctx)
}

func (s *stubCourseService) ListPublic(ctx context.Context) ([]*domain.Course, error) {
	return s.listPublicFn(ctx)
}

func (s *stubCourseService) ListByStudent(ctx context.Context, userID string) ([]ports.EnrolledCourse, error) {
	return s.listByStudentFn(ctx, userID)
}

func (s *stubCourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourseService) Create(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	return s.createFn(ctx, input)
}

func (s *stubCourseService) Update(ctx context.Context, id string, input ports.UpdateCourseInput) (*domain.Course, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCourseService) Delete(ctx context.Context, id string) (*ports.DeleteCourseResult, error) {
	return s.deleteFn(ctx, id)
}

func TestCourseHandler_ListPublic(t *testing.T) {
	e := newTestEcho()
	stub := &stubCourseService{
		listPublicFn: func(_ context.Context) ([]*domain.Course, error) {
			return []*domain.Course{{ID: "c1", Title: "Go", Active: true}}, nil
		},
	}
	handler := NewCourseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/cursos/publicos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListPublic(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var courses []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &courses); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(courses) != 1 || courses[0]["titulo"] != "Go" {
		t.Fatalf("unexpected payload: %+v", courses)
	}
}

func TestCourseHandler_Update_OnlySentFieldsForwarded(t *testing.T) {
	e := newTestEcho()
	stub := &stubCourseService{
		updateFn: func(_ context.Context, id string, input ports.UpdateCourseInput) (*domain.Course, error) {
			if id != "c1" {
				t.Fatalf("unexpected id %s", id)
			}
			if input.Title == nil || *input.Title != "Go avanzado" {
				t.Fatalf("title not forwarded: %+v", input)
			}
			if input.Description != nil || input.Duration != nil || input.Level != nil || input.Active != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return &domain.Course{ID: id, Title: *input.Title}, nil
		},
	}
	handler := NewCourseHandler(stub)

	body := strings.NewReader(`{"titulo":"Go avanzado"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/cursos/c1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCourseHandler_Delete_ReportsDeactivation(t *testing.T) {
	e := newTestEcho()
	stub := &stubCourseService{
		deleteFn: func(_ context.Context, id string) (*ports.DeleteCourseResult, error) {
			return &ports.DeleteCourseResult{Deactivated: true, Message: "curso desactivado porque tiene inscripciones"}, nil
		},
	}
	handler := NewCourseHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/cursos/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["desactivado"] != true {
		t.Fatalf("expected desactivado=true, got %+v", resp)
	}
}
