package catalog

import (
	"jishu-admin/internal/model"
	"jishu-admin/pkg/paginate"
)

// --- Course Inputs/Outputs ---

type ListCoursesInput struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}

func (i ListCoursesInput) Query() paginate.Query {
	filters := map[string]string{}
	if i.Status != "" {
		filters["status"] = i.Status
	}
	return paginate.Query{
		Page:    i.Page,
		PerPage: i.PerPage,
		Search:  i.Search,
		Filters: filters,
	}.Normalize()
}

type CreateCourseInput struct {
	Name        string
	Description string
	Price       int64
}

type UpdateCourseInput struct {
	ID          string
	Name        string
	Description string
	Price       int64
}

type ListCoursesOutput struct {
	Courses    []model.Course
	Pagination paginate.Pagination
	Loading    bool
}

type CourseOutput struct {
	Course model.Course
}

// --- Subject Inputs/Outputs ---

type ListSubjectsInput struct {
	Page     int
	PerPage  int
	Search   string
	CourseID string
}

func (i ListSubjectsInput) Query() paginate.Query {
	filters := map[string]string{}
	if i.CourseID != "" {
		filters["course_id"] = i.CourseID
	}
	return paginate.Query{
		Page:    i.Page,
		PerPage: i.PerPage,
		Search:  i.Search,
		Filters: filters,
	}.Normalize()
}

type CreateSubjectInput struct {
	CourseID string
	Name     string
}

type UpdateSubjectInput struct {
	ID       string
	CourseID string
	Name     string
}

type ListSubjectsOutput struct {
	Subjects   []model.Subject
	Pagination paginate.Pagination
	Loading    bool
}

type SubjectOutput struct {
	Subject model.Subject
}
