package http

import (
	"github.com/gin-gonic/gin"

	"todo-list-service/internal/todo"
	pkgErrors "todo-list-service/pkg/errors"
	"todo-list-service/pkg/response"
)

// List godoc
// @Summary     List todo items
// @Description Returns every todo item. An empty store is reported as Not Found.
// @Tags        Todo
// @Produce     json
// @Success     200 {object} response.Resp{data=[]todoResp}
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos [GET]
func (h *handler) List(c *gin.Context) {
	output, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a todo item
// @Description Returns a single todo item by its ID.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID (UUID)"
// @Success     200 {object} response.Resp{data=todoResp}
// @Failure     400 {object} response.ErrorResp "Malformed id"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	id, err := h.processID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	output, err := h.uc.Detail(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !output.Found {
		h.handleError(c, pkgErrors.Wrapf(pkgErrors.KindNotFound, todo.ErrTodoNotFound, "todo item %s", id))
		return
	}

	response.OK(c, newTodoResp(output.Item))
}

// Create godoc
// @Summary     Create a todo item
// @Description Creates a todo item. A due date is mirrored to Google Calendar when configured.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     200 {object} response.Resp{data=todoResp}
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos [POST]
func (h *handler) Create(c *gin.Context) {
	req, err := h.processCreateReq(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	output, err := h.uc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, newTodoResp(output.Item))
}

// Update godoc
// @Summary     Update a todo item
// @Description Partially updates a todo item. Omitted fields keep their value; is_complete is required.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Todo ID (UUID)"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=todoResp}
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	req, err := h.processUpdateReq(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	output, err := h.uc.Update(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, newTodoResp(output.Item))
}

// Complete godoc
// @Summary     Set the completion flag
// @Description Marks a todo item complete or incomplete. Requesting the current state is rejected.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Todo ID (UUID)"
// @Param       body body completeReq true "Completion flag"
// @Success     200 {object} response.Resp{data=todoResp}
// @Failure     400 {object} response.ErrorResp "Bad Request or AlreadyComplete"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	req, err := h.processCompleteReq(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	output, err := h.uc.Complete(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, newTodoResp(output.Item))
}

// Delete godoc
// @Summary     Delete a todo item
// @Description Permanently removes a todo item by ID.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID (UUID)"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.ErrorResp "Malformed id"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	id, err := h.processID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}
