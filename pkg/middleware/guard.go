package middleware

import (
	"github.com/gin-gonic/gin"
)

// Keys set on the gin context by the guards and the advanced filter.
const (
	PrincipalKey      = "principal"
	UserIDKey         = "user_id"
	UserRoleKey       = "user_role"
	AdvancedFilterKey = "advanced_filter"
)

// Precondition inspects the request before the handler runs. A non-nil error
// ends the request; ErrorHandler writes the response.
type Precondition func(c *gin.Context) error

// Guard runs preconditions in order and stops at the first failure.
func Guard(pre ...Precondition) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, check := range pre {
			if err := check(c); err != nil {
				_ = c.Error(err)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
