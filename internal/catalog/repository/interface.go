package repository

import (
	"context"

	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
)

// Repository is the composed interface for the catalog data source.
type Repository interface {
	CourseRepository
	SubjectRepository
}

// CourseRepository is the remote course collection.
type CourseRepository interface {
	Courses() resource.Store[model.Course]
	CourseDetail(ctx context.Context, id string) (model.Course, error)
}

// SubjectRepository is the remote subject collection.
type SubjectRepository interface {
	Subjects() resource.Store[model.Subject]
	SubjectDetail(ctx context.Context, id string) (model.Subject, error)
}
