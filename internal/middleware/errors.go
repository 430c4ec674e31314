package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-list-service/pkg/errors"
	"todo-list-service/pkg/response"
)

// ErrorTranslator turns the last error attached with c.Error, or an escaped
// panic, into an ErrorResp. Every error is logged here and nowhere above.
func (m Middleware) ErrorTranslator() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				m.l.Errorf(c.Request.Context(), "middleware.ErrorTranslator: panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
				if !c.Writer.Written() {
					response.InternalError(c)
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		m.translate(c, c.Errors.Last().Err)
	}
}

func (m Middleware) translate(c *gin.Context, err error) {
	m.l.Errorf(c.Request.Context(), "middleware.ErrorTranslator: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)

	if c.Writer.Written() {
		return
	}
	status, title := pkgErrors.Classify(pkgErrors.KindOf(err))
	response.Error(c, response.NewErrorResp(status, title, pkgErrors.Message(err)))
}
