package middleware

import (
	"campshop/pkg/errs"
	"campshop/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the one place errors become responses. Handlers and guards
// record the error with c.Error and return.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		e := errs.As(last.Err)
		status := e.Kind.Status()
		if status >= 500 {
			log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, last.Err)
		}

		c.AbortWithStatusJSON(status, gin.H{
			"success": false,
			"error":   e.Message,
		})
	}
}
