package jishuapi

import (
	"context"
	"time"

	"jishu-admin/internal/model"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/paginate"
)

// postDTO is the upstream wire shape of a post.
type postDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// postStore adapts the upstream collection to the resource store contract.
type postStore struct {
	coll *jishu.Collection[postDTO]
}

func (s *postStore) List(ctx context.Context, q paginate.Query) (paginate.Page[model.Post], error) {
	page, err := s.coll.List(ctx, q)
	if err != nil {
		return paginate.Page[model.Post]{}, err
	}
	posts := make([]model.Post, len(page.Items))
	for i, dto := range page.Items {
		posts[i] = model.Post(dto)
	}
	return paginate.Page[model.Post]{Items: posts, Pagination: page.Pagination}, nil
}

func (s *postStore) Create(ctx context.Context, payload model.Post) (model.Post, error) {
	created, err := s.coll.Create(ctx, postDTO(payload))
	if err != nil {
		return model.Post{}, err
	}
	return model.Post(created), nil
}

func (s *postStore) Update(ctx context.Context, id string, payload model.Post) (model.Post, error) {
	updated, err := s.coll.Update(ctx, id, postDTO(payload))
	if err != nil {
		return model.Post{}, err
	}
	return model.Post(updated), nil
}

func (s *postStore) Delete(ctx context.Context, id string) error {
	return s.coll.Delete(ctx, id)
}

func (s *postStore) ToggleStatus(ctx context.Context, id string) (model.Post, error) {
	toggled, err := s.coll.ToggleStatus(ctx, id)
	if err != nil {
		return model.Post{}, err
	}
	return model.Post(toggled), nil
}
