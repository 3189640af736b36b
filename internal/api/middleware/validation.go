package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"autoscribe/internal/api/errors"
)

// Validator is implemented by requests with rules beyond struct tags
type Validator interface {
	Validate() error
}

// ValidateRequest binds a JSON body, then checks struct tags and domain rules
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return bindingError(err, "request", "invalid JSON format")
	}
	return validateDomain(req)
}

// ValidateForm binds multipart or urlencoded form fields
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return bindingError(err, "form", "invalid form data")
	}
	return validateDomain(req)
}

func validateDomain(req interface{}) error {
	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

func bindingError(err error, field, fallback string) error {
	details := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		details[field] = fallback
		return errors.NewValidationError("Validation failed", details)
	}

	for _, fieldError := range validationErrs {
		name := strings.ToLower(fieldError.Field())
		switch fieldError.Tag() {
		case "required":
			details[name] = "is required"
		case "url", "http_url":
			details[name] = "must be a valid URL"
		case "oneof":
			details[name] = "must be one of: " + fieldError.Param()
		default:
			details[name] = "is invalid"
		}
	}
	return errors.NewValidationError("Validation failed", details)
}
