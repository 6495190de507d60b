package services

import (
	"context"
	"errors"
	"testing"

	"github.com/courseconnect/backend/internal/app/repositories"
	"github.com/courseconnect/backend/internal/pkg/apperrors"
)

func newTestService() CourseService {
	return NewCourseService(repositories.NewCourseRepository())
}

func TestCreateCourse_Success(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, "Algorithms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.ID != 1 {
		t.Errorf("expected ID 1, got %d", course.ID)
	}
	if course.Title != "Algorithms" {
		t.Errorf("expected title 'Algorithms', got %q", course.Title)
	}

	courses, err := svc.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 1 || courses[len(courses)-1].Title != "Algorithms" {
		t.Errorf("expected last course 'Algorithms', got %+v", courses)
	}
}

func TestCreateCourse_TrimsTitle(t *testing.T) {
	svc := newTestService()

	course, err := svc.CreateCourse(context.Background(), "  Operating Systems  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.Title != "Operating Systems" {
		t.Errorf("expected trimmed title, got %q", course.Title)
	}
}

func TestCreateCourse_EmptyTitle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateCourse(ctx, title)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("title %q: expected ErrValidationFailed, got %v", title, err)
		}
	}

	// No mutation on rejected input
	count, err := svc.CountCourses(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 courses after rejected creates, got %d", count)
	}
}

func TestGetCourseByID_InvalidID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetCourseByID(context.Background(), 0)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestGetCourseByID_Found(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, "Databases")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	course, err := svc.GetCourseByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.Title != "Databases" {
		t.Errorf("expected title 'Databases', got %q", course.Title)
	}
}
