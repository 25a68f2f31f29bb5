package usecase

import (
	"context"
	"errors"
	"testing"

	"jishu-admin/internal/content"
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
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

type fakePostStore struct {
	listFunc   func(ctx context.Context, q paginate.Query) (paginate.Page[model.Post], error)
	createFunc func(ctx context.Context, payload model.Post) (model.Post, error)
}

func (f *fakePostStore) List(ctx context.Context, q paginate.Query) (paginate.Page[model.Post], error) {
	if f.listFunc == nil {
		return paginate.Page[model.Post]{}, nil
	}
	return f.listFunc(ctx, q)
}

func (f *fakePostStore) Create(ctx context.Context, payload model.Post) (model.Post, error) {
	if f.createFunc == nil {
		payload.ID = "p-created"
		return payload, nil
	}
	return f.createFunc(ctx, payload)
}

func (f *fakePostStore) Update(ctx context.Context, id string, payload model.Post) (model.Post, error) {
	payload.ID = id
	return payload, nil
}

func (f *fakePostStore) Delete(ctx context.Context, id string) error { return nil }

func (f *fakePostStore) ToggleStatus(ctx context.Context, id string) (model.Post, error) {
	return model.Post{ID: id}, nil
}

type fakeCommentStore struct {
	listFunc   func(ctx context.Context, q paginate.Query) (paginate.Page[model.Comment], error)
	deleteFunc func(ctx context.Context, id string) error
}

func (f *fakeCommentStore) List(ctx context.Context, q paginate.Query) (paginate.Page[model.Comment], error) {
	if f.listFunc == nil {
		return paginate.Page[model.Comment]{}, nil
	}
	return f.listFunc(ctx, q)
}

func (f *fakeCommentStore) Create(ctx context.Context, payload model.Comment) (model.Comment, error) {
	return payload, nil
}

func (f *fakeCommentStore) Update(ctx context.Context, id string, payload model.Comment) (model.Comment, error) {
	payload.ID = id
	return payload, nil
}

func (f *fakeCommentStore) Delete(ctx context.Context, id string) error {
	if f.deleteFunc == nil {
		return nil
	}
	return f.deleteFunc(ctx, id)
}

func (f *fakeCommentStore) ToggleStatus(ctx context.Context, id string) (model.Comment, error) {
	return model.Comment{ID: id}, nil
}

type fakeContentRepo struct {
	posts    *fakePostStore
	comments *fakeCommentStore
}

func (f *fakeContentRepo) Posts() resource.Store[model.Post]       { return f.posts }
func (f *fakeContentRepo) Comments() resource.Store[model.Comment] { return f.comments }

func (f *fakeContentRepo) PostDetail(ctx context.Context, id string) (model.Post, error) {
	return model.Post{ID: id}, nil
}

func newTestUseCase(posts *fakePostStore, comments *fakeCommentStore) *implUseCase {
	if posts == nil {
		posts = &fakePostStore{}
	}
	if comments == nil {
		comments = &fakeCommentStore{}
	}
	return New(&fakeContentRepo{posts: posts, comments: comments}, resource.Options{}, &mockLogger{})
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Validation", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)

		if _, err := uc.CreatePost(ctx, content.CreatePostInput{Body: "b"}); !errors.Is(err, content.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
		if _, err := uc.CreatePost(ctx, content.CreatePostInput{Title: "t"}); !errors.Is(err, content.ErrBodyRequired) {
			t.Errorf("expected ErrBodyRequired, got %v", err)
		}
	})

	t.Run("New Posts Start As Draft", func(t *testing.T) {
		var sent model.Post
		posts := &fakePostStore{
			createFunc: func(ctx context.Context, payload model.Post) (model.Post, error) {
				sent = payload
				payload.ID = "p1"
				return payload, nil
			},
		}
		uc := newTestUseCase(posts, nil)

		if _, err := uc.CreatePost(ctx, content.CreatePostInput{Title: "Exam tips", Body: "..."}); err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
		if sent.Status != model.StatusDraft {
			t.Errorf("expected draft status, got %q", sent.Status)
		}
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()

	t.Run("Hides Deleted By Default", func(t *testing.T) {
		var got paginate.Query
		comments := &fakeCommentStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[model.Comment], error) {
				got = q
				return paginate.Page[model.Comment]{Pagination: paginate.Pagination{Page: q.Page, PerPage: q.PerPage}}, nil
			},
		}
		uc := newTestUseCase(nil, comments)

		if _, err := uc.ListComments(ctx, content.ListCommentsInput{}); err != nil {
			t.Fatalf("ListComments: %v", err)
		}
		if got.Filters["deleted"] != "false" {
			t.Errorf("expected deleted=false filter, got %v", got.Filters)
		}
	})

	t.Run("Include Deleted Drops The Filter", func(t *testing.T) {
		var got paginate.Query
		comments := &fakeCommentStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[model.Comment], error) {
				got = q
				return paginate.Page[model.Comment]{Pagination: paginate.Pagination{Page: q.Page, PerPage: q.PerPage}}, nil
			},
		}
		uc := newTestUseCase(nil, comments)

		if _, err := uc.ListComments(ctx, content.ListCommentsInput{IncludeDeleted: true}); err != nil {
			t.Fatalf("ListComments: %v", err)
		}
		if _, ok := got.Filters["deleted"]; ok {
			t.Errorf("deleted filter should be absent: %v", got.Filters)
		}
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes The Comment From The Page", func(t *testing.T) {
		comments := &fakeCommentStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[model.Comment], error) {
				return paginate.Page[model.Comment]{
					Items: []model.Comment{
						{ID: "cm1", PostID: "p1", Body: "first"},
						{ID: "cm2", PostID: "p1", Body: "second"},
					},
					Pagination: paginate.Pagination{Page: 1, Pages: 1, Total: 2, PerPage: q.PerPage},
				}, nil
			},
		}
		uc := newTestUseCase(nil, comments)

		if _, err := uc.ListComments(ctx, content.ListCommentsInput{}); err != nil {
			t.Fatalf("ListComments: %v", err)
		}
		if err := uc.DeleteComment(ctx, "cm1"); err != nil {
			t.Fatalf("DeleteComment: %v", err)
		}

		snap := uc.comments.Snapshot()
		if len(snap.Items) != 1 || snap.Items[0].ID != "cm2" {
			t.Errorf("unexpected page after delete: %+v", snap.Items)
		}
	})

	t.Run("Unknown Comment Maps To ErrCommentNotFound", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)

		if err := uc.DeleteComment(ctx, "ghost"); !errors.Is(err, content.ErrCommentNotFound) {
			t.Errorf("expected ErrCommentNotFound, got %v", err)
		}
	})

	t.Run("Upstream Failure Leaves The Page Unchanged", func(t *testing.T) {
		comments := &fakeCommentStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[model.Comment], error) {
				return paginate.Page[model.Comment]{
					Items:      []model.Comment{{ID: "cm1", PostID: "p1", Body: "first"}},
					Pagination: paginate.Pagination{Page: 1, Pages: 1, Total: 1, PerPage: q.PerPage},
				}, nil
			},
			deleteFunc: func(ctx context.Context, id string) error {
				return errors.New("upstream down")
			},
		}
		uc := newTestUseCase(nil, comments)

		if _, err := uc.ListComments(ctx, content.ListCommentsInput{}); err != nil {
			t.Fatalf("ListComments: %v", err)
		}
		if err := uc.DeleteComment(ctx, "cm1"); err == nil {
			t.Fatal("expected error, got nil")
		}
		if snap := uc.comments.Snapshot(); len(snap.Items) != 1 {
			t.Errorf("page changed after failed delete: %+v", snap.Items)
		}
	})
}
