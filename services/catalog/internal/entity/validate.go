package entity

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var Careers = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX",
	"Data Science",
	"Business",
	"Other",
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks the struct tags of an entity. Field names in the returned
// errors are the JSON names.
func Validate(v interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = validate.RegisterValidation("career", func(fl validator.FieldLevel) bool {
			for _, c := range Careers {
				if fl.Field().String() == c {
					return true
				}
			}
			return false
		})
	})
	return validate.Struct(v)
}
