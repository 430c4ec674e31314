package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "todo-list-service/pkg/errors"
)

// processID reads the :id URI param and requires it to be a UUID.
func (h *handler) processID(c *gin.Context) (string, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", pkgErrors.Wrapf(pkgErrors.KindMalformedRequest, err, "invalid todo id %q", raw)
	}
	return id.String(), nil
}

// processCreateReq binds and validates the create request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, mapBindError(err)
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, mapBindError(err)
	}
	req.ID = id
	return req, nil
}

// processCompleteReq binds and validates the complete request body + URI param.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	var req completeReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, mapBindError(err)
	}
	req.ID = id
	return req, nil
}
