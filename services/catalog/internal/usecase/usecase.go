// Package usecase holds the catalog's business rules. Every exported error is
// an *errs.Error, except list query failures which the filter middleware maps.
package usecase

import (
	"errors"

	"campshop/pkg/errs"
	"campshop/pkg/query"
	"campshop/services/catalog/internal/entity"

	"github.com/go-playground/validator/v10"
)

// lookupErr turns a failed fetch of id into the shared not-found message.
func lookupErr(err error, id string) error {
	return errs.FromStore(err, errs.ResourceNotFound(id))
}

// validate runs the struct rules of every value and reports all failing
// fields in one error.
func validate(values ...interface{}) error {
	var all validator.ValidationErrors
	for _, v := range values {
		err := entity.Validate(v)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errs.FromStore(err, nil)
		}
		all = append(all, verrs...)
	}
	if len(all) > 0 {
		return errs.FromStore(all, nil)
	}
	return nil
}

func envelope[T any](spec query.Spec, items []T, total int64, err error, keep ...string) (*query.Envelope, error) {
	if err != nil {
		return nil, err
	}
	return query.NewEnvelope(spec, items, total, keep...)
}
