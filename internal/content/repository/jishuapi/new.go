package jishuapi

import (
	"context"

	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/log"
)

const (
	postsPath    = "posts"
	commentsPath = "comments"
)

// implRepository fronts the upstream post and comment collections.
type implRepository struct {
	posts    *postStore
	comments *commentStore
	l        log.Logger
}

// New creates a content repository backed by the Jishu API.
func New(client *jishu.Client, l log.Logger) *implRepository {
	return &implRepository{
		posts: &postStore{
			coll: jishu.NewCollection[postDTO](client, postsPath, func(d postDTO) postDTO {
				d.Status = model.ToggleStatus(d.Status)
				return d
			}),
		},
		comments: &commentStore{
			coll: jishu.NewCollection[commentDTO](client, commentsPath, nil),
		},
		l: l,
	}
}

func (r *implRepository) Posts() resource.Store[model.Post] {
	return r.posts
}

func (r *implRepository) Comments() resource.Store[model.Comment] {
	return r.comments
}

func (r *implRepository) PostDetail(ctx context.Context, id string) (model.Post, error) {
	dto, err := r.posts.coll.Get(ctx, id)
	if err != nil {
		return model.Post{}, err
	}
	return model.Post(dto), nil
}
