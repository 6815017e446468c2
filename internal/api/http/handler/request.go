package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requestError is a client mistake in the request body. Fields is empty when
// the body could not be decoded at all.
type requestError struct {
	Message string
	Fields  map[string]string
}

func (e *requestError) Error() string {
	return e.Message
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// Unknown fields are ignored.
func decodeAndValidate(r *http.Request, dst any) error {
	if r.Body == nil {
		return &requestError{Message: "request body is required"}
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &requestError{Message: "invalid request body"}
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("failed to validate request: %w", err)
		}

		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return &requestError{Message: "validation failed", Fields: fields}
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
