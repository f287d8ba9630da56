package middleware

import (
	"context"
	"errors"

	"campshop/pkg/errs"
	"campshop/pkg/query"

	"github.com/gin-gonic/gin"
)

// Finder runs a parsed list query against one collection.
type Finder interface {
	Query(ctx context.Context, spec query.Spec) (*query.Envelope, error)
}

// AdvancedFilter parses the query string, runs it through finder and leaves
// the envelope on the context for the list handler.
func AdvancedFilter(finder Finder) gin.HandlerFunc {
	return Guard(func(c *gin.Context) error {
		env, err := finder.Query(c.Request.Context(), query.Parse(c.Request.URL.Query()))
		if err != nil {
			var e *errs.Error
			if errors.As(err, &e) {
				return e
			}
			return errs.ServerError("Failed to retrieve resources").Wrap(err)
		}
		c.Set(AdvancedFilterKey, env)
		return nil
	})
}

func AdvancedFilterResult(c *gin.Context) (*query.Envelope, bool) {
	v, ok := c.Get(AdvancedFilterKey)
	if !ok {
		return nil, false
	}
	env, ok := v.(*query.Envelope)
	return env, ok
}
