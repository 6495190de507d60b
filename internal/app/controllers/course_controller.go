package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courseconnect/backend/internal/app/models/dto"
	"github.com/courseconnect/backend/internal/app/services"
	"github.com/courseconnect/backend/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses retrieves all courses
// @Summary List all courses
// @Description Retrieves the full ordered sequence of courses
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {array} dto.CourseResponse "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course with the provided title
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or empty title"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	req, ok := boundCreateRequest(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, req.Title)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// boundCreateRequest fetches the body bound by the validation middleware,
// binding directly when the handler runs without it
func boundCreateRequest(ctx *gin.Context) (*dto.CreateCourseRequest, bool) {
	if v, exists := ctx.Get(middleware.ValidatedBodyKey); exists {
		if req, ok := v.(*dto.CreateCourseRequest); ok {
			return req, true
		}
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &req, true
}
