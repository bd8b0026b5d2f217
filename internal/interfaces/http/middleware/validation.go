package middleware

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/financespro/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures the binding validator so error messages
// name fields by their JSON tag instead of the Go struct field.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FormatValidationErrors turns binding failures into the standard
// envelope with one entry per invalid field.
func FormatValidationErrors(err error) dto.Response {
	var details []dto.ValidationDetail

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: validationMessage(e),
			})
		}
	}

	if len(details) == 0 {
		return dto.NewErrorResponse("Invalid request body")
	}
	return dto.NewValidationErrorResponse("Request validation failed", details)
}

// HandleValidationError answers a binding failure with a 400
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err))
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Type().Kind() == reflect.String || e.Type().Kind() == reflect.Slice {
			return "Must contain at least " + e.Param() + " items or characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	default:
		return "Invalid value"
	}
}
