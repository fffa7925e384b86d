package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todolist-sync/pkg/response"
)

// List godoc
// @Summary     List all to-do lists
// @Description Returns the whole collection in insertion order.
// @Tags        Lists
// @Produce     json
// @Success     200 {array}  listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /lists [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	lists, err := h.store.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "store.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, newListsResp(lists))
}

// Detail godoc
// @Summary     Get a to-do list
// @Description Returns a single list with its tasks.
// @Tags        Lists
// @Produce     json
// @Param       id path string true "List ID"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /lists/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.store.Get(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "store.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, newListResp(list))
}

// Create godoc
// @Summary     Create a to-do list
// @Description Stores a new list. A missing id is generated by the server.
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       body body     listReq true "List"
// @Success     201  {object} listResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - id already exists"
// @Router      /lists [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err), nil)
		return
	}

	created, err := h.store.Create(ctx, req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "store.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusCreated, newListResp(created))
}

// Replace godoc
// @Summary     Replace a to-do list
// @Description Overwrites the list stored under id with the request body.
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id   path     string  true "List ID"
// @Param       body body     listReq true "Full list"
// @Success     200  {object} listResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /lists/{id} [PUT]
func (h *handler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err), nil)
		return
	}

	updated, err := h.store.Replace(ctx, req.ID, req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "store.Replace: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, newListResp(updated))
}
