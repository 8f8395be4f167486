package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campushub/campushub/internal/app/models/dto"
)

var validate = validator.New()

// ValidateBody binds the JSON body into a fresh T, runs struct validation,
// and stores the result under "validatedBody"
func ValidateBody[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := validate.Struct(&body); err != nil {
			validationErrors := dto.NewValidationErrors()
			var fieldErrors validator.ValidationErrors
			if errors.As(err, &fieldErrors) {
				for _, fe := range fieldErrors {
					validationErrors.AddError(fe.Field(), formatValidationError(fe))
				}
			}

			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
			errorDetail = errorDetail.WithDetails(validationErrors.Errors)
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set("validatedBody", &body)
		c.Next()
	}
}

// ValidatedBody retrieves the body stored by ValidateBody. The route must
// have the matching ValidateBody middleware attached.
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	value, exists := c.Get("validatedBody")
	if exists {
		if body, ok := value.(*T); ok {
			return body, true
		}
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Request body was not validated")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	return nil, false
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
