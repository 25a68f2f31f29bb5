package usecase

import (
	"jishu-admin/internal/content/repository"
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
	"jishu-admin/pkg/log"
)

// implUseCase is the private implementation of content.UseCase.
type implUseCase struct {
	repo     repository.Repository
	posts    *resource.Manager[model.Post]
	comments *resource.Manager[model.Comment]
	l        log.Logger
}

// New creates a content UseCase with one resource manager per collection.
func New(repo repository.Repository, opts resource.Options, l log.Logger) *implUseCase {
	posts := resource.New[model.Post]("posts", repo.Posts(), resource.Accessors[model.Post]{
		ID:   func(p model.Post) string { return p.ID },
		Name: func(p model.Post) string { return p.Title },
	}, opts, l)

	comments := resource.New[model.Comment]("comments", repo.Comments(), resource.Accessors[model.Comment]{
		ID: func(c model.Comment) string { return c.ID },
		// Comments have no creatable name; the body stands in for logs.
		Name: func(c model.Comment) string { return c.Body },
	}, opts, l)

	return &implUseCase{
		repo:     repo,
		posts:    posts,
		comments: comments,
		l:        l,
	}
}
