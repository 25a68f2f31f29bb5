package content

import "context"

// UseCase manages the post and comment collections.
type UseCase interface {
	ListPosts(ctx context.Context, input ListPostsInput) (ListPostsOutput, error)
	GetPost(ctx context.Context, id string) (PostOutput, error)
	CreatePost(ctx context.Context, input CreatePostInput) (PostOutput, error)
	UpdatePost(ctx context.Context, input UpdatePostInput) (PostOutput, error)
	DeletePost(ctx context.Context, id string) error
	TogglePostStatus(ctx context.Context, id string) (PostOutput, error)

	// Comments are moderated, not authored, from the console: list and
	// soft-delete only.
	ListComments(ctx context.Context, input ListCommentsInput) (ListCommentsOutput, error)
	DeleteComment(ctx context.Context, id string) error
}
