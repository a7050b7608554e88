package models

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	fullNameRe = regexp.MustCompile(`^[A-Za-z ]+$`)
	emailRe    = regexp.MustCompile(`^[\w.+-]+@[\w-]+\.[\w.-]+$`)
)

// RegisterValidators installs the custom format rules on gin's binding
// engine. Safe to call more than once.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		return fullNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
}

// ValidationDetail renders a binding failure as a human readable reason for
// the first violated rule, naming the offending field.
func ValidationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request payload"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "fullname":
		return "Invalid full name format. Only letters and spaces are allowed."
	case "email_format":
		return "Invalid email format"
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s length is out of range", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
