package domain

import "testing"

func TestEnrollmentStatus_Valid(t *testing.T) {
	for _, s := range []EnrollmentStatus{StatusActive, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if EnrollmentStatus("pausado").Valid() {
		t.Fatalf("unexpected valid status")
	}
}

func TestEnrollmentStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to EnrollmentStatus
		ok       bool
	}{
		{StatusActive, StatusCompleted, true},
		{StatusActive, StatusCancelled, true},
		{StatusCompleted, StatusActive, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusActive, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusActive, StatusActive, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestEnrollmentStatus_Terminal(t *testing.T) {
	if StatusActive.Terminal() {
		t.Fatalf("activo must not be terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Fatalf("completado and cancelado must be terminal")
	}
}

func TestCourseLevel_Valid(t *testing.T) {
	for _, l := range []CourseLevel{LevelBeginner, LevelIntermediate, LevelAdvanced} {
		if !l.Valid() {
			t.Fatalf("expected %q to be valid", l)
		}
	}
	if CourseLevel("experto").Valid() {
		t.Fatalf("unexpected valid level")
	}
}

func TestEnrollment_OwnedBy(t *testing.T) {
	e := Enrollment{UserID: "user-1"}
	if !e.OwnedBy("user-1") {
		t.Fatalf("expected ownership")
	}
	if e.OwnedBy("user-2") {
		t.Fatalf("unexpected ownership")
	}
}
