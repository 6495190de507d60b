package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/courseconnect/backend/internal/app/controllers"
	"github.com/courseconnect/backend/internal/app/models/dto"
	"github.com/courseconnect/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	courseController *controllers.CourseController,
	pageController *controllers.PageController,
) {
	// Landing page
	router.GET("/", pageController.Home)

	// API group
	api := router.Group("/api")
	{
		api.GET("/health", healthController.Check)

		courses := api.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.POST("",
				middleware.ValidateRequest(func() interface{} { return &dto.CreateCourseRequest{} }),
				courseController.CreateCourse,
			)
		}
	}
}
