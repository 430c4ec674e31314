package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-list-service/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// NewErrorResp builds the error body sent for any failed request.
func NewErrorResp(statusCode int, title, message string) ErrorResp {
	return ErrorResp{
		StatusCode: statusCode,
		Title:      title,
		Message:    message,
	}
}

// Error aborts the request and writes resp with its own status code.
func Error(c *gin.Context, resp ErrorResp) {
	c.AbortWithStatusJSON(resp.StatusCode, resp)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	Error(c, NewErrorResp(http.StatusInternalServerError, pkgErrors.TitleInternalServerError, DefaultErrorMessage))
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context, message string) {
	Error(c, NewErrorResp(http.StatusTooManyRequests, TitleTooManyRequests, message))
}
