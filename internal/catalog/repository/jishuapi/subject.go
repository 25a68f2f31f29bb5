package jishuapi

import (
	"context"
	"time"

	"jishu-admin/internal/model"
	pkgErrors "jishu-admin/pkg/errors"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/paginate"
)

// subjectDTO is the upstream wire shape of a subject.
type subjectDTO struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"course_id"`
	Name          string    `json:"name"`
	QuestionCount int       `json:"question_count"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// subjectStore adapts the upstream collection to the resource store contract.
type subjectStore struct {
	coll *jishu.Collection[subjectDTO]
}

func (s *subjectStore) List(ctx context.Context, q paginate.Query) (paginate.Page[model.Subject], error) {
	page, err := s.coll.List(ctx, q)
	if err != nil {
		return paginate.Page[model.Subject]{}, err
	}
	subjects := make([]model.Subject, len(page.Items))
	for i, dto := range page.Items {
		subjects[i] = model.Subject(dto)
	}
	return paginate.Page[model.Subject]{Items: subjects, Pagination: page.Pagination}, nil
}

func (s *subjectStore) Create(ctx context.Context, payload model.Subject) (model.Subject, error) {
	created, err := s.coll.Create(ctx, subjectDTO(payload))
	if err != nil {
		return model.Subject{}, err
	}
	return model.Subject(created), nil
}

func (s *subjectStore) Update(ctx context.Context, id string, payload model.Subject) (model.Subject, error) {
	updated, err := s.coll.Update(ctx, id, subjectDTO(payload))
	if err != nil {
		return model.Subject{}, err
	}
	return model.Subject(updated), nil
}

func (s *subjectStore) Delete(ctx context.Context, id string) error {
	return s.coll.Delete(ctx, id)
}

// ToggleStatus is not part of the subject collection's surface.
func (s *subjectStore) ToggleStatus(ctx context.Context, id string) (model.Subject, error) {
	return model.Subject{}, pkgErrors.NewValidationError("subjects have no status toggle")
}
