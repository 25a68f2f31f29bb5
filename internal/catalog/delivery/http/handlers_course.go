package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/catalog"
	"jishu-admin/pkg/response"
)

// ListCourses godoc
// @Summary     List courses
// @Description Returns a paginated list of courses with optional search and status filter.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       page     query int    false "1-based page number"
// @Param       per_page query int    false "Page size (default: 20)"
// @Param       search   query string false "Free-text search on course name"
// @Param       status   query string false "Filter by status (published/draft)"
// @Success     200 {object} listCoursesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream Unavailable"
// @Router      /api/v1/courses [GET]
func (h *handler) ListCourses(c *gin.Context) {
	ctx := c.Request.Context()

	var req listCoursesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListCourses(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCourses: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListCoursesResp(output))
}

// DetailCourse godoc
// @Summary     Get one course
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {object} courseDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id} [GET]
func (h *handler) DetailCourse(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.GetCourse(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetCourse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, courseDetailResp{Course: newCourseResp(output.Course)})
}

// CreateCourse godoc
// @Summary     Create a course
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body courseReq true "Course data"
// @Success     200 {object} courseDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/courses [POST]
func (h *handler) CreateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	var req courseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateCourse(ctx, catalog.CreateCourseInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateCourse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, courseDetailResp{Course: newCourseResp(output.Course)})
}

// UpdateCourse godoc
// @Summary     Update a course
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Course ID"
// @Param       body body courseReq true "Fields to update"
// @Success     200 {object} courseDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id} [PUT]
func (h *handler) UpdateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	var req courseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.UpdateCourse(ctx, catalog.UpdateCourseInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateCourse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, courseDetailResp{Course: newCourseResp(output.Course)})
}

// DeleteCourse godoc
// @Summary     Delete a course
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id} [DELETE]
func (h *handler) DeleteCourse(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.DeleteCourse(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteCourse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ToggleCourseStatus godoc
// @Summary     Toggle course status
// @Description Flips a course between published and draft.
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {object} courseDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/status [PATCH]
func (h *handler) ToggleCourseStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.ToggleCourseStatus(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCourseStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, courseDetailResp{Course: newCourseResp(output.Course)})
}
