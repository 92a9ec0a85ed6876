package validator

import (
	validate "github.com/go-playground/validator/v10"
)

var v = validate.New()

// Verify runs struct tag validation on a request object.
func Verify(obj interface{}) error {
	return v.Struct(obj)
}
