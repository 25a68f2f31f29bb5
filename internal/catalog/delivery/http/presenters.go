package http

import (
	"jishu-admin/internal/catalog"
	"jishu-admin/internal/model"
	"jishu-admin/pkg/paginate"
	"jishu-admin/pkg/response"
)

// --- Course DTOs ---

type listCoursesReq struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
	Status  string `form:"status"`
}

func (r listCoursesReq) toInput() catalog.ListCoursesInput {
	return catalog.ListCoursesInput{
		Page:    r.Page,
		PerPage: r.PerPage,
		Search:  r.Search,
		Status:  r.Status,
	}
}

type courseReq struct {
	ID          string `json:"-"`
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Price       int64  `json:"price"       binding:"gte=0"`
}

type courseResp struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Price        int64             `json:"price"`
	SubjectCount int               `json:"subject_count"`
	Status       string            `json:"status"`
	CreatedAt    response.DateTime `json:"created_at"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

func newCourseResp(c model.Course) courseResp {
	return courseResp{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Price:        c.Price,
		SubjectCount: c.SubjectCount,
		Status:       c.Status,
		CreatedAt:    response.DateTime(c.CreatedAt),
		UpdatedAt:    response.DateTime(c.UpdatedAt),
	}
}

type listCoursesResp struct {
	Items      []courseResp        `json:"items"`
	Pagination paginate.Pagination `json:"pagination"`
	Loading    bool                `json:"loading"`
}

func (h *handler) newListCoursesResp(out catalog.ListCoursesOutput) listCoursesResp {
	items := make([]courseResp, len(out.Courses))
	for i, c := range out.Courses {
		items[i] = newCourseResp(c)
	}
	return listCoursesResp{
		Items:      items,
		Pagination: out.Pagination,
		Loading:    out.Loading,
	}
}

type courseDetailResp struct {
	Course courseResp `json:"course"`
}

// --- Subject DTOs ---

type listSubjectsReq struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	Search   string `form:"search"`
	CourseID string `form:"course_id"`
}

func (r listSubjectsReq) toInput() catalog.ListSubjectsInput {
	return catalog.ListSubjectsInput{
		Page:     r.Page,
		PerPage:  r.PerPage,
		Search:   r.Search,
		CourseID: r.CourseID,
	}
}

type subjectReq struct {
	ID       string `json:"-"`
	CourseID string `json:"course_id" binding:"required"`
	Name     string `json:"name"      binding:"required,min=1,max=255"`
}

type subjectResp struct {
	ID            string            `json:"id"`
	CourseID      string            `json:"course_id"`
	Name          string            `json:"name"`
	QuestionCount int               `json:"question_count"`
	Status        string            `json:"status,omitempty"`
	CreatedAt     response.DateTime `json:"created_at"`
	UpdatedAt     response.DateTime `json:"updated_at"`
}

func newSubjectResp(s model.Subject) subjectResp {
	return subjectResp{
		ID:            s.ID,
		CourseID:      s.CourseID,
		Name:          s.Name,
		QuestionCount: s.QuestionCount,
		Status:        s.Status,
		CreatedAt:     response.DateTime(s.CreatedAt),
		UpdatedAt:     response.DateTime(s.UpdatedAt),
	}
}

type listSubjectsResp struct {
	Items      []subjectResp       `json:"items"`
	Pagination paginate.Pagination `json:"pagination"`
	Loading    bool                `json:"loading"`
}

func (h *handler) newListSubjectsResp(out catalog.ListSubjectsOutput) listSubjectsResp {
	items := make([]subjectResp, len(out.Subjects))
	for i, s := range out.Subjects {
		items[i] = newSubjectResp(s)
	}
	return listSubjectsResp{
		Items:      items,
		Pagination: out.Pagination,
		Loading:    out.Loading,
	}
}

type subjectDetailResp struct {
	Subject subjectResp `json:"subject"`
}
