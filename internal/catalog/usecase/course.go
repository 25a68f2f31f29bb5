package usecase

import (
	"context"
	"errors"
	"strings"

	"jishu-admin/internal/catalog"
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
)

// ListCourses loads the requested page of courses.
func (uc *implUseCase) ListCourses(ctx context.Context, input catalog.ListCoursesInput) (catalog.ListCoursesOutput, error) {
	if err := uc.courses.Load(ctx, input.Query()); err != nil && !errors.Is(err, resource.ErrSuperseded) {
		uc.l.Errorf(ctx, "uc.ListCourses Load: %v", err)
		return catalog.ListCoursesOutput{}, err
	}
	snap := uc.courses.Snapshot()
	return catalog.ListCoursesOutput{
		Courses:    snap.Items,
		Pagination: snap.Pagination,
		Loading:    snap.Loading,
	}, nil
}

// GetCourse fetches one course straight from upstream.
func (uc *implUseCase) GetCourse(ctx context.Context, id string) (catalog.CourseOutput, error) {
	c, err := uc.repo.CourseDetail(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetCourse: %v", err)
		return catalog.CourseOutput{}, err
	}
	return catalog.CourseOutput{Course: c}, nil
}

func (uc *implUseCase) CreateCourse(ctx context.Context, input catalog.CreateCourseInput) (catalog.CourseOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return catalog.CourseOutput{}, catalog.ErrNameRequired
	}
	if input.Price < 0 {
		return catalog.CourseOutput{}, catalog.ErrNegativePrice
	}

	created, err := uc.courses.Create(ctx, model.Course{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Status:      model.StatusDraft,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCourse: %v", err)
		return catalog.CourseOutput{}, err
	}
	return catalog.CourseOutput{Course: created}, nil
}

func (uc *implUseCase) UpdateCourse(ctx context.Context, input catalog.UpdateCourseInput) (catalog.CourseOutput, error) {
	if input.Price < 0 {
		return catalog.CourseOutput{}, catalog.ErrNegativePrice
	}

	updated, err := uc.courses.Update(ctx, input.ID, model.Course{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCourse: %v", err)
		return catalog.CourseOutput{}, uc.mapCourseErr(err)
	}
	return catalog.CourseOutput{Course: updated}, nil
}

func (uc *implUseCase) DeleteCourse(ctx context.Context, id string) error {
	if err := uc.courses.Remove(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCourse: %v", err)
		return uc.mapCourseErr(err)
	}
	return nil
}

func (uc *implUseCase) ToggleCourseStatus(ctx context.Context, id string) (catalog.CourseOutput, error) {
	toggled, err := uc.courses.ToggleStatus(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleCourseStatus: %v", err)
		return catalog.CourseOutput{}, uc.mapCourseErr(err)
	}
	return catalog.CourseOutput{Course: toggled}, nil
}

func (uc *implUseCase) mapCourseErr(err error) error {
	if errors.Is(err, resource.ErrNotOnPage) {
		return catalog.ErrCourseNotFound
	}
	if errors.Is(err, resource.ErrEmptyName) {
		return catalog.ErrNameRequired
	}
	return err
}
