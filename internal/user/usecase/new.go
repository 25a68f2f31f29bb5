package usecase

import (
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
	"jishu-admin/internal/user/repository"
	"jishu-admin/pkg/log"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo repository.Repository
	mgr  *resource.Manager[model.User]
	l    log.Logger
}

// New creates a new user UseCase backed by a paginated resource manager.
func New(repo repository.Repository, opts resource.Options, l log.Logger) *implUseCase {
	mgr := resource.New[model.User]("users", repo, resource.Accessors[model.User]{
		ID:   func(u model.User) string { return u.ID },
		Name: func(u model.User) string { return u.Name },
	}, opts, l)

	return &implUseCase{
		repo: repo,
		mgr:  mgr,
		l:    l,
	}
}
