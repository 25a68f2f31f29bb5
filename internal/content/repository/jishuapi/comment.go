package jishuapi

import (
	"context"
	"time"

	"jishu-admin/internal/model"
	"jishu-admin/pkg/errors"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/paginate"
)

// commentDTO is the upstream wire shape of a comment.
type commentDTO struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// commentStore adapts the upstream collection to the resource store
// contract. Comments are never hard-deleted: Delete marks the Deleted
// flag upstream so the record survives for moderation audits.
type commentStore struct {
	coll *jishu.Collection[commentDTO]
}

func (s *commentStore) List(ctx context.Context, q paginate.Query) (paginate.Page[model.Comment], error) {
	page, err := s.coll.List(ctx, q)
	if err != nil {
		return paginate.Page[model.Comment]{}, err
	}
	comments := make([]model.Comment, len(page.Items))
	for i, dto := range page.Items {
		comments[i] = model.Comment(dto)
	}
	return paginate.Page[model.Comment]{Items: comments, Pagination: page.Pagination}, nil
}

func (s *commentStore) Create(ctx context.Context, payload model.Comment) (model.Comment, error) {
	return model.Comment{}, errors.NewValidationError("comments cannot be created from the console")
}

func (s *commentStore) Update(ctx context.Context, id string, payload model.Comment) (model.Comment, error) {
	updated, err := s.coll.Update(ctx, id, commentDTO(payload))
	if err != nil {
		return model.Comment{}, err
	}
	return model.Comment(updated), nil
}

// Delete soft-deletes: read, mark, write back.
func (s *commentStore) Delete(ctx context.Context, id string) error {
	current, err := s.coll.Get(ctx, id)
	if err != nil {
		return err
	}
	current.Deleted = true
	_, err = s.coll.Update(ctx, id, current)
	return err
}

func (s *commentStore) ToggleStatus(ctx context.Context, id string) (model.Comment, error) {
	return model.Comment{}, errors.NewValidationError("comments have no status toggle")
}
