package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/courseconnect/backend/internal/app/models"
	"github.com/courseconnect/backend/internal/app/repositories"
	"github.com/courseconnect/backend/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, title string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CountCourses(ctx context.Context) (int, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// validateTitle validates course data before it reaches the registry
func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return trimmed, nil
}

// CreateCourse validates the title and stores a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, title string) (*models.Course, error) {
	trimmed, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	course := &models.Course{Title: trimmed}
	id, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	course.ID = id
	return course, nil
}

// GetAllCourses retrieves the full ordered course sequence
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// CountCourses returns the number of stored courses
func (s *courseServiceImpl) CountCourses(ctx context.Context) (int, error) {
	count, err := s.courseRepo.CountCourses(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
