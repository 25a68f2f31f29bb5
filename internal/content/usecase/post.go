package usecase

import (
	"context"
	"errors"
	"strings"

	"jishu-admin/internal/content"
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
)

// ListPosts loads the requested page of posts.
func (uc *implUseCase) ListPosts(ctx context.Context, input content.ListPostsInput) (content.ListPostsOutput, error) {
	if err := uc.posts.Load(ctx, input.Query()); err != nil && !errors.Is(err, resource.ErrSuperseded) {
		uc.l.Errorf(ctx, "uc.ListPosts Load: %v", err)
		return content.ListPostsOutput{}, err
	}
	snap := uc.posts.Snapshot()
	return content.ListPostsOutput{
		Posts:      snap.Items,
		Pagination: snap.Pagination,
		Loading:    snap.Loading,
	}, nil
}

// GetPost fetches one post straight from upstream.
func (uc *implUseCase) GetPost(ctx context.Context, id string) (content.PostOutput, error) {
	p, err := uc.repo.PostDetail(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetPost: %v", err)
		return content.PostOutput{}, err
	}
	return content.PostOutput{Post: p}, nil
}

func (uc *implUseCase) CreatePost(ctx context.Context, input content.CreatePostInput) (content.PostOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return content.PostOutput{}, content.ErrTitleRequired
	}
	if strings.TrimSpace(input.Body) == "" {
		return content.PostOutput{}, content.ErrBodyRequired
	}

	created, err := uc.posts.Create(ctx, model.Post{
		Title:  input.Title,
		Body:   input.Body,
		Author: input.Author,
		Status: model.StatusDraft,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreatePost: %v", err)
		return content.PostOutput{}, uc.mapPostErr(err)
	}
	return content.PostOutput{Post: created}, nil
}

func (uc *implUseCase) UpdatePost(ctx context.Context, input content.UpdatePostInput) (content.PostOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return content.PostOutput{}, content.ErrTitleRequired
	}

	updated, err := uc.posts.Update(ctx, input.ID, model.Post{
		ID:    input.ID,
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdatePost: %v", err)
		return content.PostOutput{}, uc.mapPostErr(err)
	}
	return content.PostOutput{Post: updated}, nil
}

func (uc *implUseCase) DeletePost(ctx context.Context, id string) error {
	if err := uc.posts.Remove(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeletePost: %v", err)
		return uc.mapPostErr(err)
	}
	return nil
}

func (uc *implUseCase) TogglePostStatus(ctx context.Context, id string) (content.PostOutput, error) {
	toggled, err := uc.posts.ToggleStatus(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TogglePostStatus: %v", err)
		return content.PostOutput{}, uc.mapPostErr(err)
	}
	return content.PostOutput{Post: toggled}, nil
}

func (uc *implUseCase) mapPostErr(err error) error {
	if errors.Is(err, resource.ErrNotOnPage) {
		return content.ErrPostNotFound
	}
	if errors.Is(err, resource.ErrEmptyName) {
		return content.ErrTitleRequired
	}
	return err
}
