package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	todoHTTP "todo-list-service/internal/todo/delivery/http"
)

// setupTodoDomain registers the todo routes under /todos.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := todoHTTP.New(srv.l, srv.todoUC)
	todoHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
