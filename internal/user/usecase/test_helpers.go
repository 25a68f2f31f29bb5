package usecase

import (
	"context"

	"jishu-admin/internal/model"
	"jishu-admin/pkg/paginate"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepository drives the use case with func-valued behavior per method.
type fakeRepository struct {
	detailFunc func(ctx context.Context, id string) (model.User, error)
	listFunc   func(ctx context.Context, q paginate.Query) (paginate.Page[model.User], error)
	createFunc func(ctx context.Context, payload model.User) (model.User, error)
	updateFunc func(ctx context.Context, id string, payload model.User) (model.User, error)
	deleteFunc func(ctx context.Context, id string) error
	toggleFunc func(ctx context.Context, id string) (model.User, error)
}

func (f *fakeRepository) Detail(ctx context.Context, id string) (model.User, error) {
	if f.detailFunc == nil {
		return model.User{ID: id}, nil
	}
	return f.detailFunc(ctx, id)
}

func (f *fakeRepository) List(ctx context.Context, q paginate.Query) (paginate.Page[model.User], error) {
	if f.listFunc == nil {
		return paginate.Page[model.User]{}, nil
	}
	return f.listFunc(ctx, q)
}

func (f *fakeRepository) Create(ctx context.Context, payload model.User) (model.User, error) {
	if f.createFunc == nil {
		payload.ID = "u-created"
		return payload, nil
	}
	return f.createFunc(ctx, payload)
}

func (f *fakeRepository) Update(ctx context.Context, id string, payload model.User) (model.User, error) {
	if f.updateFunc == nil {
		payload.ID = id
		return payload, nil
	}
	return f.updateFunc(ctx, id, payload)
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFunc == nil {
		return nil
	}
	return f.deleteFunc(ctx, id)
}

func (f *fakeRepository) ToggleStatus(ctx context.Context, id string) (model.User, error) {
	if f.toggleFunc == nil {
		return model.User{ID: id}, nil
	}
	return f.toggleFunc(ctx, id)
}

func userPage(q paginate.Query, total int, users ...model.User) paginate.Page[model.User] {
	return paginate.Page[model.User]{
		Items: users,
		Pagination: paginate.Pagination{
			Page:    q.Page,
			Pages:   paginate.PageCount(total, q.PerPage),
			Total:   total,
			PerPage: q.PerPage,
		},
	}
}
