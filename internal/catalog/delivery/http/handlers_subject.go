package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/catalog"
	"jishu-admin/pkg/response"
)

// ListSubjects godoc
// @Summary     List subjects
// @Tags        Catalog
// @Produce     json
// @Param       page      query int    false "1-based page number"
// @Param       per_page  query int    false "Page size (default: 20)"
// @Param       search    query string false "Free-text search on subject name"
// @Param       course_id query string false "Filter by parent course"
// @Success     200 {object} listSubjectsResp
// @Router      /api/v1/subjects [GET]
func (h *handler) ListSubjects(c *gin.Context) {
	ctx := c.Request.Context()

	var req listSubjectsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListSubjects(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSubjects: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListSubjectsResp(output))
}

// DetailSubject godoc
// @Summary     Get one subject
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Subject ID"
// @Success     200 {object} subjectDetailResp
// @Router      /api/v1/subjects/{id} [GET]
func (h *handler) DetailSubject(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.GetSubject(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSubject: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, subjectDetailResp{Subject: newSubjectResp(output.Subject)})
}

// CreateSubject godoc
// @Summary     Create a subject under a course
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body subjectReq true "Subject data"
// @Success     200 {object} subjectDetailResp
// @Router      /api/v1/subjects [POST]
func (h *handler) CreateSubject(c *gin.Context) {
	ctx := c.Request.Context()

	var req subjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSubject(ctx, catalog.CreateSubjectInput{
		CourseID: req.CourseID,
		Name:     req.Name,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSubject: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, subjectDetailResp{Subject: newSubjectResp(output.Subject)})
}

// UpdateSubject godoc
// @Summary     Update a subject
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Subject ID"
// @Param       body body subjectReq true "Fields to update"
// @Success     200 {object} subjectDetailResp
// @Router      /api/v1/subjects/{id} [PUT]
func (h *handler) UpdateSubject(c *gin.Context) {
	ctx := c.Request.Context()

	var req subjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.UpdateSubject(ctx, catalog.UpdateSubjectInput{
		ID:       req.ID,
		CourseID: req.CourseID,
		Name:     req.Name,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSubject: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, subjectDetailResp{Subject: newSubjectResp(output.Subject)})
}

// DeleteSubject godoc
// @Summary     Delete a subject
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Subject ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/subjects/{id} [DELETE]
func (h *handler) DeleteSubject(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.DeleteSubject(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSubject: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
