package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"jishu-admin/pkg/response"
)

// List godoc
// @Summary     List users
// @Description Returns a paginated list of platform users with search and filters.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       page     query int    false "1-based page number"
// @Param       per_page query int    false "Page size (default: 20)"
// @Param       search   query string false "Free-text search on name/email"
// @Param       role     query string false "Filter by role (student/admin)"
// @Param       status   query string false "Filter by status (active/blocked)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream Unavailable"
// @Router      /api/v1/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get one user
// @Description Fetches the authoritative user record from upstream.
// @Tags        Users
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} userDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, userDetailResp{User: newUserResp(output.User)})
}

// Create godoc
// @Summary     Create a user
// @Description Creates a platform user. Name and email are required.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     200 {object} userDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream Unavailable"
// @Router      /api/v1/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, userDetailResp{User: newUserResp(output.User)})
}

// Update godoc
// @Summary     Update a user
// @Description Updates a user on the currently displayed page. An unknown id is a no-op error.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id   path string    true "User ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} userDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, userDetailResp{User: newUserResp(output.User)})
}

// Delete godoc
// @Summary     Delete a user
// @Description Removes a user. The displayed page steps back when it empties.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ToggleStatus godoc
// @Summary     Toggle user status
// @Description Flips a user between active and blocked.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} userDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id}/status [PATCH]
func (h *handler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.ToggleStatus(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, userDetailResp{User: newUserResp(output.User)})
}

// ChangePage godoc
// @Summary     Navigate to a page
// @Description Moves the loaded user collection to another page. Out-of-range
// @Description pages are ignored and the current state is returned unchanged.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body changePageReq true "Target page"
// @Success     200 {object} listResp
// @Router      /api/v1/users/page [POST]
func (h *handler) ChangePage(c *gin.Context) {
	ctx := c.Request.Context()

	var req changePageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ChangePage(ctx, req.Page)
	if err != nil {
		h.l.Errorf(ctx, "uc.ChangePage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Watch godoc
// @Summary     Watch the user collection
// @Description Streams user list state transitions as server-sent events.
// @Tags        Users
// @Produce     text/event-stream
// @Success     200 {string} string "SSE stream of list states"
// @Router      /api/v1/users/watch [GET]
func (h *handler) Watch(c *gin.Context) {
	ctx := c.Request.Context()

	updates, stop := h.uc.Watch(ctx)
	defer stop()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case out := <-updates:
			c.SSEvent("state", h.newListResp(out))
			return true
		}
	})
}
