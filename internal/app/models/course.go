package models

// Course represents a course offered on the platform
type Course struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
