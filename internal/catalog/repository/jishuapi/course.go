package jishuapi

import (
	"context"
	"time"

	"jishu-admin/internal/model"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/paginate"
)

// courseDTO is the upstream wire shape of a course.
type courseDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	SubjectCount int       `json:"subject_count"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// courseStore adapts the upstream collection to the resource store contract.
type courseStore struct {
	coll *jishu.Collection[courseDTO]
}

func (s *courseStore) List(ctx context.Context, q paginate.Query) (paginate.Page[model.Course], error) {
	page, err := s.coll.List(ctx, q)
	if err != nil {
		return paginate.Page[model.Course]{}, err
	}
	courses := make([]model.Course, len(page.Items))
	for i, dto := range page.Items {
		courses[i] = model.Course(dto)
	}
	return paginate.Page[model.Course]{Items: courses, Pagination: page.Pagination}, nil
}

func (s *courseStore) Create(ctx context.Context, payload model.Course) (model.Course, error) {
	created, err := s.coll.Create(ctx, courseDTO(payload))
	if err != nil {
		return model.Course{}, err
	}
	return model.Course(created), nil
}

func (s *courseStore) Update(ctx context.Context, id string, payload model.Course) (model.Course, error) {
	updated, err := s.coll.Update(ctx, id, courseDTO(payload))
	if err != nil {
		return model.Course{}, err
	}
	return model.Course(updated), nil
}

func (s *courseStore) Delete(ctx context.Context, id string) error {
	return s.coll.Delete(ctx, id)
}

func (s *courseStore) ToggleStatus(ctx context.Context, id string) (model.Course, error) {
	toggled, err := s.coll.ToggleStatus(ctx, id)
	if err != nil {
		return model.Course{}, err
	}
	return model.Course(toggled), nil
}
