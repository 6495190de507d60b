package repositories

import (
	"context"
	"sync"

	"github.com/courseconnect/backend/internal/app/models"
	"github.com/courseconnect/backend/internal/pkg/apperrors"
)

// CourseRepository holds the in-memory course registry for the process lifetime.
// The mutex guards both the ID counter and the backing slice so concurrent
// creates can neither lose an append nor hand out a duplicate ID.
type CourseRepository struct {
	mu      sync.Mutex
	courses []models.Course
	nextID  int64
}

// NewCourseRepository creates a new, empty course repository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make([]models.Course, 0),
		nextID:  1,
	}
}

// CreateCourse assigns the next sequential ID, appends the course and returns its ID
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course.ID = r.nextID
	r.nextID++
	r.courses = append(r.courses, *course)

	return course.ID, nil
}

// GetAllCourses returns a snapshot of the ordered course sequence
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy so callers never observe later appends through a shared backing array
	snapshot := make([]models.Course, len(r.courses))
	copy(snapshot, r.courses)

	return snapshot, nil
}

// GetCourseByID retrieves a single course by its ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			course := r.courses[i]
			return &course, nil
		}
	}

	return nil, apperrors.ErrCourseNotFound
}

// CountCourses returns the number of stored courses
func (r *CourseRepository) CountCourses(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.courses), nil
}
