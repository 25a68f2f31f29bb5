package usecase

import (
	"jishu-admin/internal/catalog/repository"
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
	"jishu-admin/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo     repository.Repository
	courses  *resource.Manager[model.Course]
	subjects *resource.Manager[model.Subject]
	l        log.Logger
}

// New creates a catalog UseCase with one resource manager per collection.
func New(repo repository.Repository, opts resource.Options, l log.Logger) *implUseCase {
	courses := resource.New[model.Course]("courses", repo.Courses(), resource.Accessors[model.Course]{
		ID:   func(c model.Course) string { return c.ID },
		Name: func(c model.Course) string { return c.Name },
	}, opts, l)

	subjects := resource.New[model.Subject]("subjects", repo.Subjects(), resource.Accessors[model.Subject]{
		ID:   func(s model.Subject) string { return s.ID },
		Name: func(s model.Subject) string { return s.Name },
	}, opts, l)

	return &implUseCase{
		repo:     repo,
		courses:  courses,
		subjects: subjects,
		l:        l,
	}
}
