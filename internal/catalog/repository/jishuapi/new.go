package jishuapi

import (
	"context"

	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/log"
)

const (
	coursesPath  = "courses"
	subjectsPath = "subjects"
)

// implRepository fronts the upstream course and subject collections.
type implRepository struct {
	courses  *courseStore
	subjects *subjectStore
	l        log.Logger
}

// New creates a catalog repository backed by the Jishu API.
func New(client *jishu.Client, l log.Logger) *implRepository {
	return &implRepository{
		courses: &courseStore{
			coll: jishu.NewCollection[courseDTO](client, coursesPath, func(d courseDTO) courseDTO {
				d.Status = model.ToggleStatus(d.Status)
				return d
			}),
		},
		subjects: &subjectStore{
			coll: jishu.NewCollection[subjectDTO](client, subjectsPath, nil),
		},
		l: l,
	}
}

func (r *implRepository) Courses() resource.Store[model.Course] {
	return r.courses
}

func (r *implRepository) Subjects() resource.Store[model.Subject] {
	return r.subjects
}

func (r *implRepository) CourseDetail(ctx context.Context, id string) (model.Course, error) {
	dto, err := r.courses.coll.Get(ctx, id)
	if err != nil {
		return model.Course{}, err
	}
	return model.Course(dto), nil
}

func (r *implRepository) SubjectDetail(ctx context.Context, id string) (model.Subject, error) {
	dto, err := r.subjects.coll.Get(ctx, id)
	if err != nil {
		return model.Subject{}, err
	}
	return model.Subject(dto), nil
}
