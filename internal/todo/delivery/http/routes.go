package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	todos := rg.Group("/todos")
	{
		todos.GET("", h.List)
		todos.GET("/:id", h.Detail)
		todos.POST("", h.Create)
		todos.PATCH("/:id", h.Update)
		todos.PATCH("/:id/complete", h.Complete)
		todos.DELETE("/:id", h.Delete)
	}
}
