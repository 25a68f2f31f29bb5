package usecase

import (
	"context"
	"errors"
	"strings"

	"jishu-admin/internal/catalog"
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
)

// ListSubjects loads the requested page of subjects, optionally scoped
// to one course.
func (uc *implUseCase) ListSubjects(ctx context.Context, input catalog.ListSubjectsInput) (catalog.ListSubjectsOutput, error) {
	if err := uc.subjects.Load(ctx, input.Query()); err != nil && !errors.Is(err, resource.ErrSuperseded) {
		uc.l.Errorf(ctx, "uc.ListSubjects Load: %v", err)
		return catalog.ListSubjectsOutput{}, err
	}
	snap := uc.subjects.Snapshot()
	return catalog.ListSubjectsOutput{
		Subjects:   snap.Items,
		Pagination: snap.Pagination,
		Loading:    snap.Loading,
	}, nil
}

// GetSubject fetches one subject straight from upstream.
func (uc *implUseCase) GetSubject(ctx context.Context, id string) (catalog.SubjectOutput, error) {
	s, err := uc.repo.SubjectDetail(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetSubject: %v", err)
		return catalog.SubjectOutput{}, err
	}
	return catalog.SubjectOutput{Subject: s}, nil
}

func (uc *implUseCase) CreateSubject(ctx context.Context, input catalog.CreateSubjectInput) (catalog.SubjectOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return catalog.SubjectOutput{}, catalog.ErrNameRequired
	}
	if input.CourseID == "" {
		return catalog.SubjectOutput{}, catalog.ErrCourseRequired
	}

	created, err := uc.subjects.Create(ctx, model.Subject{
		CourseID: input.CourseID,
		Name:     input.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSubject: %v", err)
		return catalog.SubjectOutput{}, err
	}
	return catalog.SubjectOutput{Subject: created}, nil
}

func (uc *implUseCase) UpdateSubject(ctx context.Context, input catalog.UpdateSubjectInput) (catalog.SubjectOutput, error) {
	updated, err := uc.subjects.Update(ctx, input.ID, model.Subject{
		ID:       input.ID,
		CourseID: input.CourseID,
		Name:     input.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSubject: %v", err)
		return catalog.SubjectOutput{}, uc.mapSubjectErr(err)
	}
	return catalog.SubjectOutput{Subject: updated}, nil
}

func (uc *implUseCase) DeleteSubject(ctx context.Context, id string) error {
	if err := uc.subjects.Remove(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSubject: %v", err)
		return uc.mapSubjectErr(err)
	}
	return nil
}

func (uc *implUseCase) mapSubjectErr(err error) error {
	if errors.Is(err, resource.ErrNotOnPage) {
		return catalog.ErrSubjectNotFound
	}
	if errors.Is(err, resource.ErrEmptyName) {
		return catalog.ErrNameRequired
	}
	return err
}
