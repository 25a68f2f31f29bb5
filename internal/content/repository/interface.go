package repository

import (
	"context"

	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
)

// Repository is the composed interface for the content data source.
type Repository interface {
	PostRepository
	CommentRepository
}

// PostRepository is the remote post collection.
type PostRepository interface {
	Posts() resource.Store[model.Post]
	PostDetail(ctx context.Context, id string) (model.Post, error)
}

// CommentRepository is the remote comment collection.
type CommentRepository interface {
	Comments() resource.Store[model.Comment]
}
