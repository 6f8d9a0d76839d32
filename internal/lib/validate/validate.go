package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a struct by its `validate` tags.
func Struct(s any) error {
	return v.Struct(s)
}
