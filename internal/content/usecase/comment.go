package usecase

import (
	"context"
	"errors"

	"jishu-admin/internal/content"
	"jishu-admin/internal/resource"
)

// ListComments loads the requested page of comments. Soft-deleted
// comments are excluded unless the input asks for them.
func (uc *implUseCase) ListComments(ctx context.Context, input content.ListCommentsInput) (content.ListCommentsOutput, error) {
	if err := uc.comments.Load(ctx, input.Query()); err != nil && !errors.Is(err, resource.ErrSuperseded) {
		uc.l.Errorf(ctx, "uc.ListComments Load: %v", err)
		return content.ListCommentsOutput{}, err
	}
	snap := uc.comments.Snapshot()
	return content.ListCommentsOutput{
		Comments:   snap.Items,
		Pagination: snap.Pagination,
		Loading:    snap.Loading,
	}, nil
}

// DeleteComment soft-deletes upstream and drops the comment from the
// current page, since default listings hide deleted comments.
func (uc *implUseCase) DeleteComment(ctx context.Context, id string) error {
	if err := uc.comments.Remove(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteComment: %v", err)
		if errors.Is(err, resource.ErrNotOnPage) {
			return content.ErrCommentNotFound
		}
		return err
	}
	return nil
}
