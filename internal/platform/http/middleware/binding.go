package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"wtwr_backend/internal/platform/apperror"
)

// InvalidDataMessage is returned for request bodies that cannot be decoded.
const InvalidDataMessage = "Invalid data"

// BindingError turns a ShouldBindJSON failure into a BadRequest.
// Validation failures name the first offending field by its JSON name; decode
// failures get InvalidDataMessage. req is the struct that was bound.
func BindingError(err error, req any) *apperror.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.BadRequest(InvalidDataMessage, err)
	}
	fe := verrs[0]
	return apperror.BadRequest(fieldMessage(fe, jsonName(req, fe.StructField())), err)
}

func fieldMessage(fe validator.FieldError, field string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %q field must be filled in", field)
	case "min":
		return fmt.Sprintf("The minimum length of the %q field is %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("The maximum length of the %q field is %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("the %q field must be a valid email", field)
	case "url":
		return fmt.Sprintf("the %q field must be a valid url", field)
	case "oneof":
		return fmt.Sprintf("The %q field must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return InvalidDataMessage
	}
}

// jsonName resolves the json tag of a top-level struct field, falling back to the Go name.
func jsonName(req any, structField string) string {
	t := reflect.TypeOf(req)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return structField
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return structField
	}
	return name
}
