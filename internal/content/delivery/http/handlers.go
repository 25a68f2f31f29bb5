package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/content"
	"jishu-admin/pkg/response"
)

// ListPosts godoc
// @Summary     List posts
// @Description Returns a paginated list of posts with optional search and status filter.
// @Tags        Content
// @Produce     json
// @Param       page     query int    false "1-based page number"
// @Param       per_page query int    false "Page size (default: 20)"
// @Param       search   query string false "Free-text search on title"
// @Param       status   query string false "Filter by status (published/draft)"
// @Success     200 {object} listPostsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/posts [GET]
func (h *handler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	var req listPostsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListPosts(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPosts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListPostsResp(output))
}

// DetailPost godoc
// @Summary     Get one post
// @Tags        Content
// @Produce     json
// @Param       id path string true "Post ID"
// @Success     200 {object} postDetailResp
// @Router      /api/v1/posts/{id} [GET]
func (h *handler) DetailPost(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.GetPost(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPost: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, postDetailResp{Post: newPostResp(output.Post)})
}

// CreatePost godoc
// @Summary     Create a post
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       body body postReq true "Post data"
// @Success     200 {object} postDetailResp
// @Router      /api/v1/posts [POST]
func (h *handler) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()

	var req postReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreatePost(ctx, content.CreatePostInput{
		Title:  req.Title,
		Body:   req.Body,
		Author: req.Author,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.CreatePost: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, postDetailResp{Post: newPostResp(output.Post)})
}

// UpdatePost godoc
// @Summary     Update a post
// @Tags        Content
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Post ID"
// @Param       body body postReq true "Fields to update"
// @Success     200 {object} postDetailResp
// @Router      /api/v1/posts/{id} [PUT]
func (h *handler) UpdatePost(c *gin.Context) {
	ctx := c.Request.Context()

	var req postReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.UpdatePost(ctx, content.UpdatePostInput{
		ID:    req.ID,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdatePost: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, postDetailResp{Post: newPostResp(output.Post)})
}

// DeletePost godoc
// @Summary     Delete a post
// @Tags        Content
// @Produce     json
// @Param       id path string true "Post ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/posts/{id} [DELETE]
func (h *handler) DeletePost(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.DeletePost(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeletePost: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// TogglePostStatus godoc
// @Summary     Toggle post status
// @Description Flips a post between published and draft.
// @Tags        Content
// @Produce     json
// @Param       id path string true "Post ID"
// @Success     200 {object} postDetailResp
// @Router      /api/v1/posts/{id}/status [PATCH]
func (h *handler) TogglePostStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.TogglePostStatus(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.TogglePostStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, postDetailResp{Post: newPostResp(output.Post)})
}

// ListComments godoc
// @Summary     List comments
// @Description Soft-deleted comments are hidden unless include_deleted is set.
// @Tags        Content
// @Produce     json
// @Param       page            query int    false "1-based page number"
// @Param       per_page        query int    false "Page size (default: 20)"
// @Param       search          query string false "Free-text search on body"
// @Param       post_id         query string false "Filter by parent post"
// @Param       include_deleted query bool   false "Include soft-deleted comments"
// @Success     200 {object} listCommentsResp
// @Router      /api/v1/comments [GET]
func (h *handler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	var req listCommentsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListComments(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListComments: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListCommentsResp(output))
}

// DeleteComment godoc
// @Summary     Delete a comment
// @Description Soft delete: the comment is flagged upstream, not removed.
// @Tags        Content
// @Produce     json
// @Param       id path string true "Comment ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/comments/{id} [DELETE]
func (h *handler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.DeleteComment(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteComment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
