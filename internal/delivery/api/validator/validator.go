// Package validator plugs go-playground/validator into echo's Validator hook.
package validator

import (
	"reflect"
	"strings"

	domainerrors "eventdesk/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request structs by their `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their request name rather than
// their Go name.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(requestFieldName)

	return &CustomValidator{validate: validate}
}

// Validate returns a ValidationError naming every field that failed.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fe.Field()+" is required")
		default:
			problems = append(problems, fe.Field()+" failed "+fe.Tag()+" check")
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

// requestFieldName picks the name a client used for the field, from the first binding
// tag present.
func requestFieldName(field reflect.StructField) string {
	for _, tag := range []string{"param", "query", "form", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}
