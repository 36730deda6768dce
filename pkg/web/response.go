// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns the human readable suffix for a failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "alphanum":
		return " must contain only letters and digits"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "oneof":
		return " must be one of " + fe.Param()
	case "amount":
		return " must be a non-negative decimal amount"
	}

	return fmt.Sprintf(" failed on the %s rule", fe.Tag())
}

// ValidationError converts a binding error into a response.
//
// Only the first failed field is reported.
func ValidationError(err error) Response {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0]
		return Response{Error: field.Field() + GetErrorMsg(field)}
	}

	return Error(err)
}
