package dto

// CreateCourseRequest represents a request to create a new course
type CreateCourseRequest struct {
	Title string `json:"title" binding:"required" validate:"required" example:"Algorithms"`
}

// CourseResponse represents course information returned by the API
type CourseResponse struct {
	ID    int64  `json:"id" example:"1"`
	Title string `json:"title" example:"Algorithms"`
}
