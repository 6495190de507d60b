package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courseconnect/backend/internal/app/services"
)

// PageController renders the HTML pages
type PageController struct {
	courseService services.CourseService
}

// NewPageController creates a new PageController
func NewPageController(courseService services.CourseService) *PageController {
	return &PageController{
		courseService: courseService,
	}
}

// Home renders the landing page
func (c *PageController) Home(ctx *gin.Context) {
	// The count is cosmetic; the page renders regardless
	count, _ := c.courseService.CountCourses(ctx)

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"title":       "CourseConnect",
		"courseCount": count,
	})
}
