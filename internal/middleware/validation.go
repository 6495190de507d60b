package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/courseconnect/backend/internal/app/models/dto"
)

var validate = validator.New()

// ValidatedBodyKey is the gin context key holding the bound request body
const ValidatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON body into a fresh instance produced by
// newObj and validates it before the handler runs. A fresh instance per
// request keeps concurrent requests from sharing a target struct.
func ValidateRequest(newObj func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newObj()
		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		// Use reflect to get a pointer to the actual value if needed
		value := reflect.ValueOf(obj)
		if value.Kind() == reflect.Ptr {
			value = value.Elem()
		}

		if err := validate.Struct(value.Interface()); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationErrors(err))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}

// formatValidationErrors creates a human-readable validation error message
func formatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "Validation failed"
	}

	e := validationErrors[0]
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
