package design

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidStyle is returned when a design or gradient fails validation.
var ErrInvalidStyle = errors.New("invalid style")

var validate = validator.New()

// Validate checks enumerations, colors and bounds of a Design, Gradient or Style.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}

	failed := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed = append(failed, fe.Namespace()+" ("+fe.Tag()+")")
	}

	return fmt.Errorf("%w: %s", ErrInvalidStyle, strings.Join(failed, ", "))
}
